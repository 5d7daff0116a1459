package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Phone         string               `bson:"phone"`
	Email         string               `bson:"email,omitempty"`
	PasswordHash  string               `bson:"password_hash"`
	CreatedAt     int64                `bson:"created_at"`
	SearchHistory []domain.SearchEntry `bson:"search_history"`
}

// EnsureIndexes creates the uniqueness constraints the signup path relies
// on: phone is unique, email is unique only among documents that carry one.
// Duplicate detection happens on write, so two concurrent signups with the
// same phone cannot both succeed.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	history := user.SearchHistory
	if history == nil {
		history = []domain.SearchEntry{}
	}
	doc := mongoUser{
		Phone:         user.Phone,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		CreatedAt:     user.CreatedAt.Unix(),
		SearchHistory: history,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoUserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"phone": login},
		bson.M{"email": login},
	}})
}

func (r *MongoUserRepository) FindByPhoneOrEmail(ctx context.Context, phone, email string) (*domain.User, error) {
	or := bson.A{bson.M{"phone": phone}}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// AppendSearch pushes one entry onto the user's history. The update is
// keyed by id and matching zero documents is not an error, so a stale or
// malformed user id degrades to a no-op.
func (r *MongoUserRepository) AppendSearch(ctx context.Context, userID string, entry domain.SearchEntry) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"search_history": bson.M{
			"query":     entry.Query,
			"timestamp": entry.Timestamp,
		}},
	})
	if err != nil {
		return fmt.Errorf("append search history: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:            mu.ID.Hex(),
		Phone:         mu.Phone,
		Email:         mu.Email,
		PasswordHash:  mu.PasswordHash,
		CreatedAt:     unixToTime(mu.CreatedAt),
		SearchHistory: mu.SearchHistory,
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
