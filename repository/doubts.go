package repository

import (
	"context"
	"time"

	"studyhub/model"
	"studyhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoubtsRepo struct {
	MongoCollection *mongo.Collection
}

func GetDoubtsRepo(client *mongo.Client) *DoubtsRepo {
	return &DoubtsRepo{
		MongoCollection: client.Database(utils.MongoDatabase).Collection("doubts"),
	}
}

func (r *DoubtsRepo) CreateDoubt(ctx context.Context, doubt *model.Doubt) error {
	timer := utils.TrackDBOperation("insert", "doubts")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, doubt)
	if err != nil {
		utils.TrackError("database", "doubt_creation_failed")
		return err
	}

	utils.TrackResourceOperation("doubts", "create")
	return nil
}

// GetAllDoubts retrieves every doubt, newest first. The board is public.
func (r *DoubtsRepo) GetAllDoubts(ctx context.Context) ([]*model.Doubt, error) {
	timer := utils.TrackDBOperation("find", "doubts")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	doubts := []*model.Doubt{}
	if err = cursor.All(ctx, &doubts); err != nil {
		return nil, err
	}
	return doubts, nil
}

// GetDoubt looks a doubt up by id alone; callers decide what ownership means.
func (r *DoubtsRepo) GetDoubt(ctx context.Context, doubtID string) (*model.Doubt, error) {
	timer := utils.TrackDBOperation("find", "doubts")
	defer timer.ObserveDuration()

	var doubt model.Doubt
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": doubtID}).Decode(&doubt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "doubt_lookup_error")
		return nil, err
	}
	return &doubt, nil
}

// AppendAnswer pushes an answer sub-record onto a doubt.
func (r *DoubtsRepo) AppendAnswer(ctx context.Context, doubtID string, answer model.Answer) error {
	timer := utils.TrackDBOperation("update", "doubts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": doubtID},
		bson.M{
			"$push": bson.M{"answers": answer},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		utils.TrackError("database", "answer_append_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	utils.TrackResourceOperation("doubts", "answer")
	return nil
}

// SetResolved writes the resolution flag. Ownership is checked by the caller;
// the write itself is idempotent.
func (r *DoubtsRepo) SetResolved(ctx context.Context, doubtID string, resolved bool) error {
	timer := utils.TrackDBOperation("update", "doubts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": doubtID},
		bson.M{"$set": bson.M{
			"is_resolved": resolved,
			"updated_at":  time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "doubt_resolve_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	utils.TrackResourceOperation("doubts", "resolve")
	return nil
}

func (r *DoubtsRepo) CountDoubts(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("count", "doubts")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{})
}
