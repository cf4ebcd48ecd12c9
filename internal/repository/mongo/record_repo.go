package mongo

import (
	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordCollectionName = "completed_workouts"

// mongoRecordRepository implements repository.RecordRepository.
type mongoRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoRecordRepository creates a new completed-workout repository.
func NewMongoRecordRepository(db *mongo.Database) repository.RecordRepository {
	return &mongoRecordRepository{
		collection: db.Collection(recordCollectionName),
	}
}

// Create inserts a completed workout record. CompletedAt is stamped
// here from the write-time clock; any caller-supplied value is
// overwritten so history ordering never depends on a client clock.
func (r *mongoRecordRepository) Create(ctx context.Context, record *domain.CompletedWorkoutRecord) (primitive.ObjectID, error) {
	if record.TemplateID == "" || record.Name == "" || record.Type == "" {
		return primitive.NilObjectID, errors.New("record requires templateId, name, and type")
	}

	record.ID = primitive.NewObjectID()
	record.CompletedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted record ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single record by its ID.
func (r *mongoRecordRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CompletedWorkoutRecord, error) {
	var record domain.CompletedWorkoutRecord
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves every record, newest first.
func (r *mongoRecordRepository) GetAll(ctx context.Context) ([]domain.CompletedWorkoutRecord, error) {
	var records []domain.CompletedWorkoutRecord
	findOptions := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a record. Records are append-only from the session
// engine's point of view; this is the user-initiated administrative
// action from the history view.
func (r *mongoRecordRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRecordIndexes creates necessary indexes. Call during startup.
func EnsureRecordIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "completedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "templateId", Value: 1}, {Key: "completedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
