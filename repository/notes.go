package repository

import (
	"context"
	"errors"

	"studyhub/model"
	"studyhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by owner-scoped lookups that match nothing. A
// record owned by someone else is indistinguishable from an absent one.
var ErrNotFound = errors.New("record not found")

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(utils.MongoDatabase).Collection("notes"),
	}
}

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}

	utils.TrackResourceOperation("notes", "create")
	return nil
}

// GetUserNotes retrieves all notes owned by a user, newest first.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote mutates a note matched by id AND owner.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": noteID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"title":      updates.Title,
		"content":    updates.Content,
		"tags":       updates.Tags,
		"updated_at": updates.UpdatedAt,
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	utils.TrackResourceOperation("notes", "update")
	return nil
}

// DeleteNote removes a note matched by id AND owner.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	utils.TrackResourceOperation("notes", "delete")
	return nil
}

func (r *NotesRepo) CountNotes(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{})
}
