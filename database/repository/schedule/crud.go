// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agendly/database/repository"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoScheduleRepo) Load(ctx context.Context, storeID string) (*models.WeeklySchedule, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var schedule models.WeeklySchedule
	err := r.coll.FindOne(ctx, bson.M{"storeId": storeID}).Decode(&schedule)
	if err != nil {
		return nil, fmt.Errorf("load schedule for store %s: %w", storeID, repository.Translate(err))
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) Save(ctx context.Context, schedule *models.WeeklySchedule, expectedVersion int) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{
		"storeId": schedule.StoreID,
		"version": expectedVersion,
	}
	update := bson.M{
		"$set":         bson.M{"weekdays": schedule.Weekdays, "updatedAt": now},
		"$inc":         bson.M{"version": 1},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	// Upsert only when nothing is stored yet; a stale version on an existing document would
	// otherwise try to insert a second document and trip the unique storeId index.
	opts := options.Update().SetUpsert(expectedVersion == 0)

	res, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("save schedule for store %s: %w", schedule.StoreID, repository.ErrVersionConflict)
		}
		return fmt.Errorf("save schedule for store %s: %w", schedule.StoreID, err)
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return fmt.Errorf("save schedule for store %s: %w", schedule.StoreID, repository.ErrVersionConflict)
	}

	schedule.Version = expectedVersion + 1
	schedule.UpdatedAt = now
	if expectedVersion == 0 {
		schedule.CreatedAt = now
	}
	return nil
}

func (r *mongoScheduleRepo) Delete(ctx context.Context, storeID string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"storeId": storeID})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("delete schedule for store %s: %w", storeID, err)
	}
	return nil
}
