package mongo

import (
	"context"

	domainerrors "accounts/internal/domain/errors"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Gateway errors. Every other failure is reported as a domain StorageError.
var (
	// ErrDocumentNotFound is returned when no document matches the filter.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentConflict is returned when a document already matches the uniqueness filter.
	ErrDocumentConflict = errors.New("document conflict")
)

// Gateway is a thin typed wrapper over one collection. Each call is a single round trip
// (CreateUnique is a check plus an insert) and joins the session carried by ctx, if any.
type Gateway[T any] struct {
	coll *mongo.Collection
}

// NewGateway creates a gateway over the collection.
func NewGateway[T any](coll *mongo.Collection) *Gateway[T] {
	return &Gateway[T]{coll: coll}
}

// Create inserts the document and returns its id.
func (g *Gateway[T]) Create(ctx context.Context, doc *T) (bson.ObjectID, error) {
	res, err := g.coll.InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, classify(err, "insert")
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, domainerrors.NewStorageError(
			errors.Errorf("unexpected inserted id type %T", res.InsertedID), "insert")
	}

	return id, nil
}

// CreateUnique inserts the document unless a document matches uniqueFilter.
func (g *Gateway[T]) CreateUnique(ctx context.Context, doc *T, uniqueFilter any) (bson.ObjectID, error) {
	count, err := g.coll.CountDocuments(ctx, uniqueFilter, options.Count().SetLimit(1))
	if err != nil {
		return bson.NilObjectID, classify(err, "uniqueness check")
	}
	if count > 0 {
		return bson.NilObjectID, ErrDocumentConflict
	}

	return g.Create(ctx, doc)
}

// Find returns every document matching the filter.
func (g *Gateway[T]) Find(ctx context.Context, filter any) ([]*T, error) {
	cursor, err := g.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, classify(err, "find")
	}

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classify(err, "decode")
	}

	return docs, nil
}

// FindOne returns the first document matching the filter.
func (g *Gateway[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := g.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, classify(err, "find one")
	}

	return &doc, nil
}

// UpdateOne applies the update to the first matching document and returns the
// document as it is after the update, or before it when returnAfter is false.
// arrayFilters bind the identifiers used by $[<identifier>] in the update.
func (g *Gateway[T]) UpdateOne(ctx context.Context, filter, update any, returnAfter bool, arrayFilters ...any) (*T, error) {
	returnDocument := options.Before
	if returnAfter {
		returnDocument = options.After
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(returnDocument)
	if len(arrayFilters) > 0 {
		opts.SetArrayFilters(arrayFilters)
	}

	var doc T
	err := g.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		return nil, classify(err, "update")
	}

	return &doc, nil
}

// DeleteOne removes the first matching document and returns it.
func (g *Gateway[T]) DeleteOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := g.coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		return nil, classify(err, "delete")
	}

	return &doc, nil
}

func classify(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrDocumentNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDocumentConflict
	default:
		return domainerrors.NewStorageError(err, "mongo "+op+" failed")
	}
}
