package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile defaults applied at signup when the optional fields are omitted.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://www.gravatar.com/avatar?d=mp"
)

type User struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	About  string             `json:"about" bson:"about"`
	Avatar string             `json:"avatar" bson:"avatar"`
	Email  string             `json:"email" bson:"email"`
	// Password holds the bcrypt hash. Never serialized back to clients.
	Password string `json:"-" bson:"password"`
}
