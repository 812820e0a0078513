package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShortDateLayout renders a calendar date in the short human-readable form
// used in API responses, e.g. "Sun Jan 01 2023".
const ShortDateLayout = "Mon Jan 02 2006"

// Exercise is a single logged activity belonging to a user.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // Link to the User this exercise was logged against
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // Minutes
	Date        time.Time          `bson:"date" json:"date"`         // Date precision, stored at midnight UTC
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// DateString returns the exercise date in the short human-readable form.
func (e *Exercise) DateString() string {
	return e.Date.Format(ShortDateLayout)
}
