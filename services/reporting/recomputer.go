// File: services/reporting/recomputer.go
package reporting

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/services/appointment"
	"agendly/utils"

	"go.uber.org/zap"
)

// ReportingService serves the store dashboard.
type ReportingService interface {
	GetDashboard(ctx context.Context, storeID string) (*models.DashboardStats, error)
}

// Recomputer keeps dashboard snapshots fresh. It observes the appointment lifecycle and
// rebuilds the snapshot of the affected store after every change.
type Recomputer struct {
	Appointments appointmentRepo.AppointmentRepository
	Cache        StatsCache // optional
	Location     *time.Location
	Logger       *zap.Logger
	Now          func() time.Time
}

func NewRecomputer(
	appointments appointmentRepo.AppointmentRepository,
	cache StatsCache,
	loc *time.Location,
	logger *zap.Logger,
) (*Recomputer, error) {
	if appointments == nil {
		return nil, fmt.Errorf("reporting initialization error: appointment repository is nil")
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recomputer{
		Appointments: appointments,
		Cache:        cache,
		Location:     loc,
		Logger:       logger,
		Now:          time.Now,
	}, nil
}

// Recompute loads the store's history, computes the dashboard for now and caches it.
func (r *Recomputer) Recompute(ctx context.Context, storeID string) (*models.DashboardStats, error) {
	appointments, err := r.Appointments.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("recompute dashboard for store %s: %w", storeID, err)
	}
	stats := Dashboard(storeID, appointments, r.Now(), r.Location)

	if r.Cache != nil {
		if err := r.Cache.Set(ctx, stats); err != nil {
			r.Logger.Warn("dashboard cache write failed", zap.String("storeID", storeID), zap.Error(err))
		}
	}
	return &stats, nil
}

// GetDashboard serves the cached snapshot when it was computed for today, otherwise recomputes.
func (r *Recomputer) GetDashboard(ctx context.Context, storeID string) (*models.DashboardStats, error) {
	if r.Cache != nil {
		cached, ok, err := r.Cache.Get(ctx, storeID)
		if err != nil {
			r.Logger.Warn("dashboard cache read failed", zap.String("storeID", storeID), zap.Error(err))
		}
		if ok && cached.ReferenceDate == utils.FormatDate(r.Now().In(r.Location)) {
			return cached, nil
		}
	}
	return r.Recompute(ctx, storeID)
}

// OnAppointmentEvent implements appointment.Observer.
func (r *Recomputer) OnAppointmentEvent(ctx context.Context, evt appointment.Event) error {
	if evt.Type == appointment.EventStoreCleared {
		return r.Forget(ctx, evt.Appointment.StoreID)
	}
	_, err := r.Recompute(ctx, evt.Appointment.StoreID)
	return err
}

// Forget drops the cached snapshot of a deleted store.
func (r *Recomputer) Forget(ctx context.Context, storeID string) error {
	if r.Cache == nil {
		return nil
	}
	if err := r.Cache.Invalidate(ctx, storeID); err != nil {
		return fmt.Errorf("invalidate dashboard for store %s: %w", storeID, err)
	}
	return nil
}
