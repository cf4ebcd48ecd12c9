package service

import (
	"context"
	"fmt"
	"strings"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/session"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassService logs jiu-jitsu classes and journal entries.
type ClassService struct {
	classes repository.ClassRepository
	journal repository.JournalRepository
}

func NewClassService(classes repository.ClassRepository, journal repository.JournalRepository) *ClassService {
	return &ClassService{classes: classes, journal: journal}
}

// LogClass validates and stores one class. Rolls where both fields are
// blank are dropped before the write.
func (s *ClassService) LogClass(ctx context.Context, class domain.Class) (primitive.ObjectID, error) {
	if err := session.ValidateClass(class); err != nil {
		return primitive.NilObjectID, err
	}
	if class.Type == "" {
		class.Type = domain.ClassGi
	}

	kept := class.Rolls[:0]
	for _, r := range class.Rolls {
		r.Partner = strings.TrimSpace(r.Partner)
		r.Notes = strings.TrimSpace(r.Notes)
		if r.Partner == "" && r.Notes == "" {
			continue
		}
		kept = append(kept, r)
	}
	class.Rolls = kept

	return s.classes.Create(ctx, &class)
}

// Classes returns all logged classes, newest first.
func (s *ClassService) Classes(ctx context.Context) ([]domain.Class, error) {
	return s.classes.GetAll(ctx)
}

// AddJournalEntry stores a free-form note. Blank entries are rejected.
func (s *ClassService) AddJournalEntry(ctx context.Context, body string) (primitive.ObjectID, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: journal entry cannot be empty", session.ErrValidation)
	}
	return s.journal.Create(ctx, &domain.JournalEntry{Body: body})
}

// JournalEntries returns all journal entries, newest first.
func (s *ClassService) JournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.journal.GetAll(ctx)
}
