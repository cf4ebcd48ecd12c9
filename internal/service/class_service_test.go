package service

import (
	"context"
	"testing"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubClasses struct {
	created []domain.Class
}

func (s *stubClasses) Create(_ context.Context, class *domain.Class) (primitive.ObjectID, error) {
	class.ID = primitive.NewObjectID()
	s.created = append(s.created, *class)
	return class.ID, nil
}

func (s *stubClasses) GetAll(_ context.Context) ([]domain.Class, error) {
	return s.created, nil
}

type stubJournal struct {
	created []domain.JournalEntry
}

func (s *stubJournal) Create(_ context.Context, entry *domain.JournalEntry) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	s.created = append(s.created, *entry)
	return entry.ID, nil
}

func (s *stubJournal) GetAll(_ context.Context) ([]domain.JournalEntry, error) {
	return s.created, nil
}

func TestLogClass_DropsBlankRolls(t *testing.T) {
	classes := &stubClasses{}
	svc := NewClassService(classes, &stubJournal{})

	_, err := svc.LogClass(context.Background(), domain.Class{
		Instructor: "Prof. Silva",
		Type:       domain.ClassNoGi,
		Rolls: []domain.Roll{
			{Partner: "Marcus", Notes: "worked half guard"},
			{Partner: "  ", Notes: ""},
			{Partner: "", Notes: "good scramble"},
		},
	})
	require.NoError(t, err)

	require.Len(t, classes.created, 1)
	rolls := classes.created[0].Rolls
	require.Len(t, rolls, 2)
	assert.Equal(t, "Marcus", rolls[0].Partner)
	assert.Equal(t, "good scramble", rolls[1].Notes)
}

func TestLogClass_RequiresInstructor(t *testing.T) {
	svc := NewClassService(&stubClasses{}, &stubJournal{})
	_, err := svc.LogClass(context.Background(), domain.Class{Instructor: "  "})
	assert.ErrorIs(t, err, session.ErrValidation)
}

func TestLogClass_DefaultsToGi(t *testing.T) {
	classes := &stubClasses{}
	svc := NewClassService(classes, &stubJournal{})

	_, err := svc.LogClass(context.Background(), domain.Class{Instructor: "Prof. Silva"})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassGi, classes.created[0].Type)
}

func TestAddJournalEntry(t *testing.T) {
	journal := &stubJournal{}
	svc := NewClassService(&stubClasses{}, journal)

	_, err := svc.AddJournalEntry(context.Background(), "  felt sharp today  ")
	require.NoError(t, err)
	require.Len(t, journal.created, 1)
	assert.Equal(t, "felt sharp today", journal.created[0].Body)

	_, err = svc.AddJournalEntry(context.Background(), "   ")
	assert.ErrorIs(t, err, session.ErrValidation)
}
