// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository is the appointment persistence boundary.
type AppointmentRepository interface {
	// FindByStoreAndDate returns every appointment (any status) of a store on date.
	FindByStoreAndDate(ctx context.Context, storeID, date string) ([]models.Appointment, error)
	// FindByStoreAndDateRange returns appointments with from <= date < to, ordered by date and time.
	FindByStoreAndDateRange(ctx context.Context, storeID, from, to string) ([]models.Appointment, error)
	// FindByStore returns the full appointment history of a store.
	FindByStore(ctx context.Context, storeID string) ([]models.Appointment, error)
	GetByID(ctx context.Context, storeID, id string) (*models.Appointment, error)
	// Insert fails with repository.ErrDuplicateKey when an active appointment holds the slot.
	Insert(ctx context.Context, appt *models.Appointment) error
	// UpdateStatus moves an appointment from one status to another and returns the updated
	// record. repository.ErrVersionConflict means the stored status no longer equals from.
	UpdateStatus(ctx context.Context, storeID, id string, from, to models.AppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, storeID, id string) error
	DeleteByStore(ctx context.Context, storeID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
