package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/conneco/feed-api/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	Pass      string    `bson:"pass"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *UserRepository) Create(ctx context.Context, name, pass string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, usersCollection)
	if err != nil {
		return nil, err
	}

	doc := userDoc{
		ID:        id,
		Name:      name,
		Pass:      pass,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return toDomainUser(doc), nil
}

// FindByPass returns the lowest-id user whose credential equals pass. Login
// carries no account selector, so the first match is the authenticated row;
// the sort keeps that choice deterministic.
func (r *UserRepository) FindByPass(ctx context.Context, pass string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"pass": pass}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by pass: %w", err)
	}
	return toDomainUser(doc), nil
}

func (r *UserRepository) FindByIDAndPass(ctx context.Context, id int64, pass string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "pass": pass}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id and pass: %w", err)
	}
	return toDomainUser(doc), nil
}

// EnsureIndexes creates the lookup indexes used by login and search.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pass", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainUser(doc userDoc) *domain.User {
	return &domain.User{
		ID:        doc.ID,
		Name:      doc.Name,
		Pass:      doc.Pass,
		CreatedAt: doc.CreatedAt,
	}
}
