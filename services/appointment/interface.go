package appointment

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	catalogRepo "agendly/database/repository/catalog"
	"agendly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Lifecycle creates appointments and moves them through their status machine.
type Lifecycle interface {
	Create(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error)
	Transition(ctx context.Context, storeID, id string, to models.AppointmentStatus) (*models.Appointment, error)
	// Delete is the admin hard delete.
	Delete(ctx context.Context, storeID, id string) error
	Get(ctx context.Context, storeID, id string) (*models.Appointment, error)
	ListByDate(ctx context.Context, storeID, date string) ([]models.Appointment, error)
	// ListRange returns appointments dated in [from, to).
	ListRange(ctx context.Context, storeID, from, to string) ([]models.Appointment, error)
	// DeleteStore removes every appointment of a store as part of store deletion.
	DeleteStore(ctx context.Context, storeID string) (int64, error)
}

// DefaultLifecycle is the production implementation.
type DefaultLifecycle struct {
	Appointments appointmentRepo.AppointmentRepository
	Services     catalogRepo.ServiceRepository
	Observers    []Observer
	Logger       *zap.Logger

	Now   func() time.Time
	NewID func() string
}

func NewDefaultLifecycle(
	appointments appointmentRepo.AppointmentRepository,
	services catalogRepo.ServiceRepository,
	logger *zap.Logger,
	observers ...Observer,
) (*DefaultLifecycle, error) {
	if appointments == nil || services == nil {
		return nil, fmt.Errorf("appointment lifecycle initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultLifecycle{
		Appointments: appointments,
		Services:     services,
		Observers:    observers,
		Logger:       logger,
		Now:          time.Now,
		NewID:        uuid.NewString,
	}, nil
}

// AddObserver registers o for subsequent changes. Not safe for use once requests are served.
func (l *DefaultLifecycle) AddObserver(o Observer) {
	l.Observers = append(l.Observers, o)
}
