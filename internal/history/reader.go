package history

import (
	"context"
	"errors"
	"time"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRecordNotFound is returned when a history record ID does not
// resolve to a stored document. Malformed IDs map here too: from the
// caller's point of view there is no such record.
var ErrRecordNotFound = errors.New("workout record not found")

// Reader reconstitutes persisted records for detail display.
type Reader struct {
	records repository.RecordRepository
}

// NewReader creates a history reader over the record repository.
func NewReader(records repository.RecordRepository) *Reader {
	return &Reader{records: records}
}

// Detail is a record prepared for display: the server timestamp
// materialized into a local time, and the column set selected by the
// record's type.
type Detail struct {
	Record      domain.CompletedWorkoutRecord `json:"record"`
	CompletedAt time.Time                     `json:"completedAt"`
	Columns     []string                      `json:"columns"`
}

// Get fetches one record by its hex ID.
func (r *Reader) Get(ctx context.Context, idHex string) (*Detail, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrRecordNotFound
	}
	record, err := r.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &Detail{
		Record:      *record,
		CompletedAt: record.CompletedAt.Local(),
		Columns:     columnsFor(record.Type),
	}, nil
}

// columnsFor selects the per-set table columns for a record type:
// the numeric triple for hypertrophy, a completion flag for everything
// else that logs sets.
func columnsFor(t domain.WorkoutType) []string {
	switch t {
	case domain.WorkoutHypertrophy:
		return []string{"weight", "reps", "rpe"}
	case domain.WorkoutCardio:
		return nil
	default:
		return []string{"completed"}
	}
}
