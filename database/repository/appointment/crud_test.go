package appointmentRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"agendly/database/repository"
	"agendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "agendly.appointments"

func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func sampleAppointment(status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:           "appt-1",
		StoreID:      "store-1",
		CustomerName: "Ana",
		ServiceID:    "svc-1",
		ServiceName:  "Haircut",
		ServicePrice: 100,
		Date:         "2024-03-04",
		Time:         "09:00",
		Status:       status,
		Active:       status != models.StatusCancelled,
		CreatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets active flag", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		appt := sampleAppointment(models.StatusPending)
		appt.Active = false
		require.NoError(t, repo.Insert(context.Background(), &appt))
		assert.True(t, appt.Active)
	})

	mt.Run("occupied slot", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: agendly.appointments index: unique_active_slot",
		}))

		appt := sampleAppointment(models.StatusPending)
		err := repo.Insert(context.Background(), &appt)
		assert.True(t, errors.Is(err, repository.ErrDuplicateKey))
	})
}

func TestUpdateStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("applies", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		updated := sampleAppointment(models.StatusConfirmed)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: toDoc(t, updated)}))

		got, err := repo.UpdateStatus(context.Background(), "store-1", "appt-1", models.StatusPending, models.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, got.Status)
		assert.True(t, got.Active)
	})

	mt.Run("status moved underneath", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)

		_, err := repo.UpdateStatus(context.Background(), "store-1", "appt-1", models.StatusPending, models.StatusConfirmed)
		assert.True(t, errors.Is(err, repository.ErrVersionConflict))
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		_, err := repo.UpdateStatus(context.Background(), "store-1", "nope", models.StatusPending, models.StatusConfirmed)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestFindByStoreAndDate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes all statuses", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		first := sampleAppointment(models.StatusCancelled)
		second := sampleAppointment(models.StatusPending)
		second.ID = "appt-2"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, first), toDoc(t, second)))

		got, err := repo.FindByStoreAndDate(context.Background(), "store-1", "2024-03-04")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, models.StatusCancelled, got[0].Status)
		assert.False(t, got[0].Active)
		assert.Equal(t, "appt-2", got[1].ID)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.FindByStoreAndDate(context.Background(), "store-1", "2024-03-04")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), "store-1", "appt-1")
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})

	mt.Run("removed", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(t, repo.Delete(context.Background(), "store-1", "appt-1"))
	})
}
