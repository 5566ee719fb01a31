package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tcprodojo/backend/internal/model"
)

// Admin provides access to back-office accounts.  Unlike content entities,
// admins are keyed by username and are only ever written by the adminctl
// provisioning command.
type Admin struct {
	col *mongo.Collection
}

// NewAdmin constructs the repository over the admins collection.
func NewAdmin(db *mongo.Database) *Admin {
	return &Admin{col: db.Collection("admins")}
}

// GetByUsername fetches a single admin account.  ErrNotFound is returned
// when the username is unknown.
func (r *Admin) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var u model.AdminUser
	if err := r.col.FindOne(ctx, bson.M{"username": username}, opts).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create persists a new admin account, stamping the creation time.  It
// refuses to overwrite an existing username.
func (r *Admin) Create(ctx context.Context, u *model.AdminUser) error {
	if _, err := r.GetByUsername(ctx, u.Username); err == nil {
		return ErrExists
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	u.CreatedAt = model.Now()
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// DeleteByUsername removes an admin account.  ErrNotFound is returned when
// the username is unknown.
func (r *Admin) DeleteByUsername(ctx context.Context, username string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all admin accounts, used by the provisioning command.
func (r *Admin) List(ctx context.Context) ([]*model.AdminUser, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*model.AdminUser{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
