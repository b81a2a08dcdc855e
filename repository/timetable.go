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

type TimetableRepo struct {
	MongoCollection *mongo.Collection
}

func GetTimetableRepo(client *mongo.Client) *TimetableRepo {
	return &TimetableRepo{
		MongoCollection: client.Database(utils.MongoDatabase).Collection("timetables"),
	}
}

// GetOrCreate returns the caller's timetable, materializing the default
// seven-day week on first read. Racing first reads both insert against the
// unique user index; the loser re-reads the winner's document.
func (r *TimetableRepo) GetOrCreate(ctx context.Context, userID string) (*model.Timetable, error) {
	timer := utils.TrackDBOperation("find", "timetables")
	defer timer.ObserveDuration()

	var timetable model.Timetable
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&timetable)
	if err == nil {
		return &timetable, nil
	}
	if err != mongo.ErrNoDocuments {
		utils.TrackError("database", "timetable_lookup_error")
		return nil, err
	}

	now := time.Now()
	fresh := &model.Timetable{
		ID:        utils.NewID(),
		UserID:    userID,
		Days:      model.DefaultDays(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.MongoCollection.InsertOne(ctx, fresh); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&timetable)
			if err != nil {
				return nil, err
			}
			return &timetable, nil
		}
		utils.TrackError("database", "timetable_creation_failed")
		return nil, err
	}

	utils.TrackResourceOperation("timetable", "create")
	return fresh, nil
}

// ReplaceDays overwrites the caller's week, creating the document if needed.
func (r *TimetableRepo) ReplaceDays(ctx context.Context, userID string, days []model.DaySchedule) (*model.Timetable, error) {
	timer := utils.TrackDBOperation("update", "timetables")
	defer timer.ObserveDuration()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"days":       days,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        utils.NewID(),
			"user_id":    userID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var timetable model.Timetable
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&timetable)
	if err != nil {
		utils.TrackError("database", "timetable_replace_failed")
		return nil, err
	}

	utils.TrackResourceOperation("timetable", "replace")
	return &timetable, nil
}
