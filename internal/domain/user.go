package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that exercises are logged against.
// Users are write-once: there is no update or delete operation.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"` // Not unique; duplicates are permitted
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
