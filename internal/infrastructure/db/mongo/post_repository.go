package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/conneco/feed-api/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, coll: db.Collection(postsCollection)}
}

type postDoc struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"user_id"`
	Text      string    `bson:"text,omitempty"`
	ImageURL  string    `bson:"image_url,omitempty"`
	Date      *string   `bson:"date,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type postOwnerDoc struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

type postWithUserDoc struct {
	postDoc `bson:",inline"`
	User    postOwnerDoc `bson:"user"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, postsCollection)
	if err != nil {
		return nil, err
	}

	doc := postDoc{
		ID:        id,
		UserID:    post.UserID,
		Text:      post.Text,
		ImageURL:  post.ImageURL,
		Date:      post.Date,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return toDomainPost(doc), nil
}

// FindByOwner returns every post owned by userID, ordered by creation time
// descending with id descending as tie-break.
func (r *PostRepository) FindByOwner(ctx context.Context, userID int64) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		sortStage(),
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find posts by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.Post, len(docs))
	for i, doc := range docs {
		posts[i] = *toDomainPost(doc)
	}
	return posts, nil
}

// CountByOwnerNames counts the inner join of posts and users filtered on the
// owner's name, independent of any pagination window.
func (r *PostRepository) CountByOwnerNames(ctx context.Context, names []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(joinStages(names), bson.D{{Key: "$count", Value: "total"}})
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count posts by owner names: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("decode count: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

// FindByOwnerNames returns one window of the same join used by
// CountByOwnerNames, with the owner's id and name attached to each row.
func (r *PostRepository) FindByOwnerNames(ctx context.Context, names []string, offset, limit int64) ([]domain.PostWithUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(joinStages(names),
		sortStage(),
		bson.D{{Key: "$skip", Value: offset}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("search posts by owner names: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postWithUserDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode joined posts: %w", err)
	}

	posts := make([]domain.PostWithUser, len(docs))
	for i, doc := range docs {
		posts[i] = domain.PostWithUser{
			Post: *toDomainPost(doc.postDoc),
			User: domain.PostOwner{ID: doc.User.ID, Name: doc.User.Name},
		}
	}
	return posts, nil
}

// joinStages expresses the inner join between posts and users filtered on the
// owner's name. $unwind drops posts without a matching user, so the join is
// inner and each post contributes at most one row to the count.
func joinStages(names []string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "user.name", Value: bson.D{{Key: "$in", Value: names}}},
		}}},
	}
}

// sortStage orders newest first; the id tie-break keeps pagination stable when
// creation timestamps collide.
func sortStage() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	}}}
}

// EnsureIndexes creates the indexes backing owner listing and the join.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainPost(doc postDoc) *domain.Post {
	return &domain.Post{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Text:      doc.Text,
		ImageURL:  doc.ImageURL,
		Date:      doc.Date,
		CreatedAt: doc.CreatedAt,
	}
}
