package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

const userCollection = "users"

// UserRepository is the MongoDB-backed user store.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique index on the normalized username.
// Uniqueness is enforced here, atomically, not by a read-then-write in the
// service layer.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "normalized_username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

type userDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Username           string             `bson:"username"`
	NormalizedUsername string             `bson:"normalized_username"`
	KnownAs            string             `bson:"known_as,omitempty"`
	Gender             string             `bson:"gender,omitempty"`
	DateOfBirth        int64              `bson:"date_of_birth,omitempty"`
	City               string             `bson:"city,omitempty"`
	Country            string             `bson:"country,omitempty"`
	PhotoURL           string             `bson:"photo_url,omitempty"`
	PasswordHash       string             `bson:"password_hash"`
	Roles              []string           `bson:"roles"`
	CreatedAt          int64              `bson:"created_at"`
	LastActive         int64              `bson:"last_active"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		Username:           user.Username,
		NormalizedUsername: domain.NormalizeUsername(user.Username),
		KnownAs:            user.KnownAs,
		Gender:             user.Gender,
		DateOfBirth:        timeToUnix(user.DateOfBirth),
		City:               user.City,
		Country:            user.Country,
		PhotoURL:           user.PhotoURL,
		PasswordHash:       user.PasswordHash,
		Roles:              user.Roles,
		CreatedAt:          timeToUnix(user.CreatedAt),
		LastActive:         timeToUnix(user.LastActive),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ValidationErrors{
				{Field: "username", Message: "username is already taken"},
			}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, normalizedUsername string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"normalized_username": normalizedUsername}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// GetRoles returns the roles embedded in the user document, in stored order.
func (r *UserRepository) GetRoles(ctx context.Context, user *domain.User) ([]string, error) {
	if user.Roles != nil {
		return user.Roles, nil
	}

	var doc struct {
		Roles []string `bson:"roles"`
	}
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find roles: %w", err)
	}
	return doc.Roles, nil
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		KnownAs:      d.KnownAs,
		Gender:       d.Gender,
		DateOfBirth:  unixToTime(d.DateOfBirth),
		City:         d.City,
		Country:      d.Country,
		PhotoURL:     d.PhotoURL,
		PasswordHash: d.PasswordHash,
		Roles:        d.Roles,
		CreatedAt:    unixToTime(d.CreatedAt),
		LastActive:   unixToTime(d.LastActive),
	}
}

func timeToUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
