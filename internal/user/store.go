package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrInvalidID  = errors.New("invalid user id")
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the persistence contract the handlers depend on. Read methods
// never return the password hash; GetByEmail does, for credential checks.
type Store interface {
	Create(ctx context.Context, u User) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (User, error)
}

// MongoStore implements Store on a users collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{col: database.Collection("users")}
}

// EnsureIndexes creates the unique email index backing the uniqueness
// invariant. Called once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// noPassword excludes the hash from read results.
var noPassword = options.FindOne().SetProjection(bson.M{"password": 0})

func (s *MongoStore) Create(ctx context.Context, u User) (User, error) {
	u.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

func (s *MongoStore) List(ctx context.Context) ([]User, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, err
	}
	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrInvalidID
	}
	var u User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}, noPassword).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *MongoStore) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *MongoStore) UpdateProfile(ctx context.Context, id, name, about string) (User, error) {
	return s.update(ctx, id, bson.M{"name": name, "about": about})
}

func (s *MongoStore) UpdateAvatar(ctx context.Context, id, avatar string) (User, error) {
	return s.update(ctx, id, bson.M{"avatar": avatar})
}

func (s *MongoStore) update(ctx context.Context, id string, fields bson.M) (User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var u User
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
