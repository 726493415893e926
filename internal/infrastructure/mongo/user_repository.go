package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userDoc struct {
	ID           string    `bson:"_id"`
	FullName     string    `bson:"full_name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	AccountType  string    `bson:"account_type"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// UserRepo cuentas en la colección users.
type UserRepo struct {
	c *mongo.Collection
}

// NewUserRepository construye el repositorio sobre db.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{c: db.Collection(collUsers)}
}

// Create inserta la cuenta; el índice único de email decide los duplicados.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.c.InsertOne(ctx, userDoc{
		ID: u.ID, FullName: u.FullName, Email: u.Email, PasswordHash: u.PasswordHash,
		AccountType: u.AccountType, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var d userDoc
	if err := r.c.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &entity.User{
		ID: d.ID, FullName: d.FullName, Email: d.Email, PasswordHash: d.PasswordHash,
		AccountType: d.AccountType, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}, nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.c.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "password_hash", Value: passwordHash},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
