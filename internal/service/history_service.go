package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/history"
	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordSummary is the list-view shape of a completed workout.
type RecordSummary struct {
	ID          string             `json:"id"`
	TemplateID  string             `json:"templateId"`
	Name        string             `json:"name"`
	Type        domain.WorkoutType `json:"type"`
	CompletedAt time.Time          `json:"completedAt"`
}

// Export points at an uploaded history snapshot.
type Export struct {
	ObjectKey   string `json:"objectKey"`
	DownloadURL string `json:"downloadUrl"`
}

// HistoryService lists, reads, deletes and exports completed workout
// records.
type HistoryService struct {
	records repository.RecordRepository
	reader  *history.Reader
	files   storage.FileStorage
	log     *logrus.Entry
}

// NewHistoryService builds the service. files may be nil, which
// disables export.
func NewHistoryService(records repository.RecordRepository, files storage.FileStorage, log *logrus.Entry) *HistoryService {
	return &HistoryService{
		records: records,
		reader:  history.NewReader(records),
		files:   files,
		log:     log,
	}
}

// List returns all records, newest first, trimmed to summary shape.
func (s *HistoryService) List(ctx context.Context) ([]RecordSummary, error) {
	records, err := s.records.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RecordSummary, 0, len(records))
	for _, r := range records {
		out = append(out, RecordSummary{
			ID:          r.ID.Hex(),
			TemplateID:  r.TemplateID,
			Name:        r.Name,
			Type:        r.Type,
			CompletedAt: r.CompletedAt.Local(),
		})
	}
	return out, nil
}

// Get returns one record prepared for detail display.
func (s *HistoryService) Get(ctx context.Context, idHex string) (*history.Detail, error) {
	return s.reader.Get(ctx, idHex)
}

// Delete removes one record permanently.
func (s *HistoryService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return history.ErrRecordNotFound
	}
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return history.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// ExportAll uploads the full history as one JSON document and returns
// a short-lived download link.
func (s *HistoryService) ExportAll(ctx context.Context) (*Export, error) {
	if s.files == nil {
		return nil, errors.New("export storage not configured")
	}

	records, err := s.records.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/history-%s-%s.json", time.Now().UTC().Format("2006-01-02"), uuid.NewString())
	if err := s.files.Upload(ctx, key, "application/json", bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("uploading history export: %w", err)
	}

	url, err := s.files.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning history export: %w", err)
	}

	s.log.WithFields(logrus.Fields{"key": key, "records": len(records)}).Info("history export uploaded")
	return &Export{ObjectKey: key, DownloadURL: url}, nil
}
