package repository

import (
	"alcyxob/training-log/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// TemplateRepository provides read access to the workout template
// library and write access for seeding.
type TemplateRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error)
	GetAll(ctx context.Context) ([]domain.WorkoutTemplate, error)
	Upsert(ctx context.Context, tmpl *domain.WorkoutTemplate) error
}

// RecordRepository persists completed workout records. Create assigns
// CompletedAt from the write-time clock; callers never supply it.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.CompletedWorkoutRecord) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CompletedWorkoutRecord, error)
	GetAll(ctx context.Context) ([]domain.CompletedWorkoutRecord, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ClassRepository persists logged jiu-jitsu classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.Class, error)
}

// JournalRepository persists training journal entries.
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.JournalEntry, error)
}

// ScheduleRepository reads and replaces the single weekly schedule
// document.
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WeeklySchedule, error)
	Put(ctx context.Context, schedule *domain.WeeklySchedule) error
}
