package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gamesapi/internal/model"
	"gamesapi/internal/repository"
)

// gameDocument is the persisted shape of a game: { _id, title, genre, releaseDate }.
type gameDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Genre       string             `bson:"genre"`
	ReleaseDate string             `bson:"releaseDate"`
}

func (d gameDocument) toModel() model.Game {
	return model.Game{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseDate: d.ReleaseDate,
	}
}

// GameMongo is a MongoDB implementation of repository.GameRepository.
// IDs are ObjectIDs generated on insert and exposed as their hex form.
type GameMongo struct {
	coll *mongo.Collection
}

// NewGameMongo creates a repository backed by the given collection.
func NewGameMongo(coll *mongo.Collection) *GameMongo {
	return &GameMongo{coll: coll}
}

var _ repository.GameRepository = (*GameMongo)(nil)

// Create inserts a new document and returns it with the generated ObjectID.
func (r *GameMongo) Create(ctx context.Context, game *model.Game) (*model.Game, error) {
	doc := gameDocument{
		Title:       game.Title,
		Genre:       game.Genre,
		ReleaseDate: game.ReleaseDate,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, repository.Wrap("insert", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, repository.Wrap("insert", errors.New("unexpected inserted id type"))
	}
	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// List returns every document in natural order.
func (r *GameMongo) List(ctx context.Context) ([]model.Game, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, repository.Wrap("list", err)
	}
	var docs []gameDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, repository.Wrap("list", err)
	}

	items := make([]model.Game, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

// FindByID fetches a single document by its hex ObjectID.
func (r *GameMongo) FindByID(ctx context.Context, id string) (*model.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc gameDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("find", err)
	}
	out := doc.toModel()
	return &out, nil
}

// Update replaces the document body while keeping its _id, and returns the new version.
func (r *GameMongo) Update(ctx context.Context, id string, game *model.Game) (*model.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	replacement := bson.D{
		{Key: "title", Value: game.Title},
		{Key: "genre", Value: game.Genre},
		{Key: "releaseDate", Value: game.ReleaseDate},
	}
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc gameDocument
	err = r.coll.FindOneAndReplace(ctx, bson.D{{Key: "_id", Value: oid}}, replacement, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("update", err)
	}
	out := doc.toModel()
	return &out, nil
}

// Delete removes a single document by ID.
func (r *GameMongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return repository.Wrap("delete", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteAll removes every document from the collection.
func (r *GameMongo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, repository.Wrap("delete all", err)
	}
	return res.DeletedCount, nil
}

// Ping checks connectivity to the primary.
func (r *GameMongo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
