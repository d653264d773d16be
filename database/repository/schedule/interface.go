// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists one weekly schedule document per store.
type ScheduleRepository interface {
	// Load returns the store's schedule or repository.ErrNotFound.
	Load(ctx context.Context, storeID string) (*models.WeeklySchedule, error)
	// Save writes the whole document if the stored version still equals expectedVersion
	// (0 = not yet stored) and bumps the version. A stale version yields repository.ErrVersionConflict.
	Save(ctx context.Context, schedule *models.WeeklySchedule, expectedVersion int) error
	// Delete removes the store's schedule. Deleting a missing schedule is not an error.
	Delete(ctx context.Context, storeID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB ScheduleRepository.
func NewMongoScheduleRepo(db *mongo.Database) ScheduleRepository {
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
