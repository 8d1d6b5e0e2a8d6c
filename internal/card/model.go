package card

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Card struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Link  string             `json:"link" bson:"link"`
	Owner primitive.ObjectID `json:"owner" bson:"owner"`
	// Likes is a set: a user id appears at most once.
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}
