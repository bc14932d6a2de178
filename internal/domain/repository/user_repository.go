package repository

import (
	"context"
	"errors"
	"fmt"
	"message_board/internal/common"
	"message_board/internal/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUserName(ctx context.Context, userName string) (*model.User, error)
	FindByAccessToken(ctx context.Context, token string) (*model.User, error)
}

type mongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{users: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		// The driver would assign an ObjectID itself, but doing it here keeps
		// the id on the struct we hand back to the caller.
		user.ID = bson.NewObjectID().Hex()
	}
	_, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("mongoUserRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.D{{Key: "userName", Value: userName}}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRepository.FindByUserName: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindByAccessToken(ctx context.Context, token string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.D{{Key: "accessToken", Value: token}}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRepository.FindByAccessToken: %w", err)
	}
	return user, nil
}
