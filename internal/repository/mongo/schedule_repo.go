package mongo

import (
	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scheduleCollectionName = "schedule"

// mongoScheduleRepository implements repository.ScheduleRepository.
// The weekly schedule is a single document with a fixed ID; Put
// replaces it wholesale.
type mongoScheduleRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduleRepository creates a new schedule repository.
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	return &mongoScheduleRepository{
		collection: db.Collection(scheduleCollectionName),
	}
}

// Get retrieves the weekly schedule document.
func (r *mongoScheduleRepository) Get(ctx context.Context) (*domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule
	filter := bson.M{"_id": domain.ScheduleDocID}

	err := r.collection.FindOne(ctx, filter).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// Put replaces the weekly schedule document, creating it if absent.
func (r *mongoScheduleRepository) Put(ctx context.Context, schedule *domain.WeeklySchedule) error {
	schedule.ID = domain.ScheduleDocID
	schedule.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": domain.ScheduleDocID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, schedule, opts)
	return err
}
