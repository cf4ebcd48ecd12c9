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

const (
	classCollectionName   = "classes"
	journalCollectionName = "journal_entries"
)

// mongoClassRepository implements repository.ClassRepository.
type mongoClassRepository struct {
	collection *mongo.Collection
}

// NewMongoClassRepository creates a new jiu-jitsu class repository.
func NewMongoClassRepository(db *mongo.Database) repository.ClassRepository {
	return &mongoClassRepository{
		collection: db.Collection(classCollectionName),
	}
}

// Create inserts a logged class.
func (r *mongoClassRepository) Create(ctx context.Context, class *domain.Class) (primitive.ObjectID, error) {
	if class.Instructor == "" {
		return primitive.NilObjectID, errors.New("class requires an instructor")
	}
	class.ID = primitive.NewObjectID()
	class.CreatedAt = time.Now().UTC()
	if class.Date.IsZero() {
		class.Date = class.CreatedAt
	}

	result, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted class ID")
	}
	return insertedID, nil
}

// GetAll retrieves all logged classes, newest first.
func (r *mongoClassRepository) GetAll(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return classes, nil
}

// mongoJournalRepository implements repository.JournalRepository.
type mongoJournalRepository struct {
	collection *mongo.Collection
}

// NewMongoJournalRepository creates a new journal repository.
func NewMongoJournalRepository(db *mongo.Database) repository.JournalRepository {
	return &mongoJournalRepository{
		collection: db.Collection(journalCollectionName),
	}
}

// Create inserts a journal entry.
func (r *mongoJournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (primitive.ObjectID, error) {
	if entry.Body == "" {
		return primitive.NilObjectID, errors.New("journal entry requires a body")
	}
	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted journal entry ID")
	}
	return insertedID, nil
}

// GetAll retrieves all journal entries, newest first.
func (r *mongoJournalRepository) GetAll(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureClassIndexes creates necessary indexes. Call during startup.
func EnsureClassIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
