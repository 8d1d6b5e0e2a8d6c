package card

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("card not found")
	ErrInvalidID = errors.New("invalid card id")
)

// Store is the persistence contract the handlers depend on. AddLike and
// RemoveLike are atomic set operations: concurrent likes from different
// users never lose updates, and repeating either is a no-op.
type Store interface {
	List(ctx context.Context) ([]Card, error)
	Create(ctx context.Context, c Card) (Card, error)
	GetByID(ctx context.Context, id string) (Card, error)
	Delete(ctx context.Context, id string) (Card, error)
	AddLike(ctx context.Context, id, userID string) (Card, error)
	RemoveLike(ctx context.Context, id, userID string) (Card, error)
}

// MongoStore implements Store on a cards collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{col: database.Collection("cards")}
}

func (s *MongoStore) List(ctx context.Context) ([]Card, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	cards := []Card{}
	if err := cur.All(ctx, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *MongoStore) Create(ctx context.Context, c Card) (Card, error) {
	c.ID = primitive.NewObjectID()
	c.Likes = []primitive.ObjectID{}
	c.CreatedAt = time.Now().UTC()
	if _, err := s.col.InsertOne(ctx, c); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Card{}, ErrInvalidID
	}
	var c Card
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Card{}, ErrNotFound
	}
	if err != nil {
		return Card{}, err
	}
	return c, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) (Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Card{}, ErrInvalidID
	}
	var c Card
	err = s.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Card{}, ErrNotFound
	}
	if err != nil {
		return Card{}, err
	}
	return c, nil
}

func (s *MongoStore) AddLike(ctx context.Context, id, userID string) (Card, error) {
	return s.updateLikes(ctx, id, userID, "$addToSet")
}

func (s *MongoStore) RemoveLike(ctx context.Context, id, userID string) (Card, error) {
	return s.updateLikes(ctx, id, userID, "$pull")
}

func (s *MongoStore) updateLikes(ctx context.Context, id, userID, op string) (Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Card{}, ErrInvalidID
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return Card{}, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c Card
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{op: bson.M{"likes": uid}}, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Card{}, ErrNotFound
	}
	if err != nil {
		return Card{}, err
	}
	return c, nil
}
