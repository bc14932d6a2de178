package repository

import (
	"context"
	"errors"
	"fmt"
	"message_board/internal/common"
	"message_board/internal/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MessageUpdate carries the writable fields of an edit. The whole set is
// applied on every edit; the stored id and createdAt are left untouched.
type MessageUpdate struct {
	Message  string
	ParentID string
	Author   string
}

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	// FindRecent returns up to limit messages, newest first.
	FindRecent(ctx context.Context, limit int64) ([]model.Message, error)
	// FindOneAndUpdate overwrites the message with the given id and returns
	// the post-update document, or common.ErrNotFound.
	FindOneAndUpdate(ctx context.Context, id string, update MessageUpdate) (*model.Message, error)
	// FindOneAndDelete removes the message only when both id and author
	// match, returning the removed document or common.ErrNotFound.
	FindOneAndDelete(ctx context.Context, id, author string) (*model.Message, error)
}

type mongoMessageRepository struct {
	messages *mongo.Collection
}

func NewMongoMessageRepository(db *mongo.Database) MessageRepository {
	return &mongoMessageRepository{messages: db.Collection("messages")}
}

func (r *mongoMessageRepository) Create(ctx context.Context, message *model.Message) error {
	if message.ID == "" {
		message.ID = bson.NewObjectID().Hex()
	}
	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("mongoMessageRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoMessageRepository) FindRecent(ctx context.Context, limit int64) ([]model.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.messages.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongoMessageRepository.FindRecent: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []model.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("mongoMessageRepository.FindRecent: %w", err)
	}
	return messages, nil
}

func (r *mongoMessageRepository) FindOneAndUpdate(ctx context.Context, id string, update MessageUpdate) (*model.Message, error) {
	set := bson.D{
		{Key: "message", Value: update.Message},
		{Key: "parentId", Value: update.ParentID},
		{Key: "author", Value: update.Author},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	message := &model.Message{}
	err := r.messages.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(message)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMessageRepository.FindOneAndUpdate: %w", err)
	}
	return message, nil
}

func (r *mongoMessageRepository) FindOneAndDelete(ctx context.Context, id, author string) (*model.Message, error) {
	message := &model.Message{}
	err := r.messages.FindOneAndDelete(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "author", Value: author},
	}).Decode(message)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMessageRepository.FindOneAndDelete: %w", err)
	}
	return message, nil
}
