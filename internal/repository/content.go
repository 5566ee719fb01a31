package repository

import (
	"context" // context carries deadlines into driver calls
	"time"    // time stamps created_at / updated_at

	"github.com/google/uuid"                       // uuid generates document identifiers
	"go.mongodb.org/mongo-driver/bson"             // bson builds filters and update documents
	"go.mongodb.org/mongo-driver/mongo"            // mongo is the document store client
	"go.mongodb.org/mongo-driver/mongo/options"    // options configures find projections and sorts

	"github.com/tcprodojo/backend/internal/model" // model defines the stored entities
)

// listLimit caps how many documents a single listing returns.
const listLimit = 1000

// Ptr constrains PT to be a pointer to the entity struct E that also
// implements model.Entity.  The two-parameter form lets the repository both
// allocate fresh values (for decoding) and call the pointer methods that
// assign identifiers and timestamps.
type Ptr[E any] interface {
	*E
	model.Entity
}

// Content is the one repository behind every collection: the content types,
// bookings, contact messages and status checks differ only in schema, so a
// single generic implementation is instantiated once per collection.
type Content[E any, PT Ptr[E]] struct {
	col       *mongo.Collection
	sortField string // ascending sort for listings; empty means natural order
}

// NewContent builds a repository over the named collection.  sortField names
// the display-order field for collections whose listings are explicitly
// ordered; pass "" for the rest.
func NewContent[E any, PT Ptr[E]](db *mongo.Database, collection, sortField string) *Content[E, PT] {
	return &Content[E, PT]{col: db.Collection(collection), sortField: sortField}
}

// List returns every document in the collection with the store-internal _id
// projected out.  Stored RFC 3339 timestamp strings come back as structured
// values via the model.Timestamp codec.
func (r *Content[E, PT]) List(ctx context.Context) ([]PT, error) {
	cur, err := r.col.Find(ctx, bson.M{}, r.listOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []PT{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// listOptions builds the find options behind List: the store-internal _id is
// projected out, results are capped, and collections with a display-order
// field come back in ascending field order.
func (r *Content[E, PT]) listOptions() *options.FindOptions {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(listLimit)
	if r.sortField != "" {
		opts.SetSort(bson.D{{Key: r.sortField, Value: 1}})
	}
	return opts
}

// Create assigns a fresh identifier and creation time to e and persists it.
// Any id or created_at supplied by the caller is overwritten.
func (r *Content[E, PT]) Create(ctx context.Context, e PT) error {
	e.Init(uuid.NewString(), time.Now().UTC())
	_, err := r.col.InsertOne(ctx, e)
	return err
}

// Update replaces every stored field of the document addressed by id with
// the fields of e and stamps an update time.  The id inside e is forced to
// the addressed one, so identifiers stay immutable.  ErrNotFound is returned
// when no document matched.
func (r *Content[E, PT]) Update(ctx context.Context, id string, e PT) error {
	e.Touch(id, time.Now().UTC())
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": e})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document addressed by id.  ErrNotFound is returned when
// nothing was deleted.
func (r *Content[E, PT]) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
