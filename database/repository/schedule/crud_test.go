package scheduleRepo

import (
	"context"
	"errors"
	"testing"

	"agendly/database/repository"
	"agendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "agendly.schedules"

func TestLoad(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoScheduleRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "storeId", Value: "store-1"},
			{Key: "weekdays", Value: bson.A{bson.A{}, bson.A{"08:00", "08:30"}, bson.A{}, bson.A{}, bson.A{}, bson.A{}, bson.A{}}},
			{Key: "version", Value: 4},
		}))

		schedule, err := repo.Load(context.Background(), "store-1")
		require.NoError(t, err)
		assert.Equal(t, "store-1", schedule.StoreID)
		assert.Equal(t, 4, schedule.Version)
		assert.Equal(t, []string{"08:00", "08:30"}, schedule.Weekdays[1])
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMongoScheduleRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Load(context.Background(), "store-1")
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestSave(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bumps version", func(mt *mtest.T) {
		repo := NewMongoScheduleRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		schedule := &models.WeeklySchedule{StoreID: "store-1", Version: 2}
		require.NoError(t, repo.Save(context.Background(), schedule, 2))
		assert.Equal(t, 3, schedule.Version)
	})

	mt.Run("stale version", func(mt *mtest.T) {
		repo := NewMongoScheduleRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		schedule := &models.WeeklySchedule{StoreID: "store-1", Version: 2}
		err := repo.Save(context.Background(), schedule, 2)
		assert.True(t, errors.Is(err, repository.ErrVersionConflict))
		assert.Equal(t, 2, schedule.Version)
	})

	mt.Run("concurrent first insert", func(mt *mtest.T) {
		repo := NewMongoScheduleRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: agendly.schedules index: unique_store",
		}))

		err := repo.Save(context.Background(), &models.WeeklySchedule{StoreID: "store-1"}, 0)
		assert.True(t, errors.Is(err, repository.ErrVersionConflict))
	})
}
