package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassType is gi or no-gi.
type ClassType string

const (
	ClassGi   ClassType = "gi"
	ClassNoGi ClassType = "nogi"
)

// Roll is one sparring round within a class. Entries where both
// fields are blank are dropped at save time.
type Roll struct {
	Partner string `bson:"partner" json:"partner"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Class is one logged jiu-jitsu class.
type Class struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date              time.Time          `bson:"date" json:"date"`
	Time              string             `bson:"time" json:"time"`
	Instructor        string             `bson:"instructor" json:"instructor"`
	Type              ClassType          `bson:"type" json:"type"`
	TechniquesCovered string             `bson:"techniquesCovered,omitempty" json:"techniquesCovered,omitempty"`
	Rolls             []Roll             `bson:"rolls,omitempty" json:"rolls,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// JournalEntry is a free-form training journal note.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
