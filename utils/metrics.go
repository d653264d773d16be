package utils

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking flows.
type BookingMetrics struct {
	bookingsTotal    *prometheus.CounterVec
	conflictsTotal   *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
	deletionsTotal   prometheus.Counter
	remindersTotal   *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendly",
			Subsystem: "booking",
			Name:      "appointments_created_total",
			Help:      "Appointments created, by source",
		}, []string{"source"}),
		conflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendly",
			Subsystem: "booking",
			Name:      "conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken",
		}, []string{"source"}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendly",
			Subsystem: "booking",
			Name:      "status_transitions_total",
			Help:      "Appointment status changes",
		}, []string{"from", "to"}),
		deletionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agendly",
			Subsystem: "booking",
			Name:      "appointments_deleted_total",
			Help:      "Appointments hard-deleted by admins",
		}),
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendly",
			Subsystem: "reminders",
			Name:      "processed_total",
			Help:      "Reminder tasks scheduled and delivered",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.conflictsTotal, m.transitionsTotal, m.deletionsTotal, m.remindersTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(source string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(source).Inc()
}

func (m *BookingMetrics) ObserveConflict(source string) {
	if m == nil {
		return
	}
	m.conflictsTotal.WithLabelValues(source).Inc()
}

func (m *BookingMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *BookingMetrics) ObserveDeletion() {
	if m == nil {
		return
	}
	m.deletionsTotal.Inc()
}

// ObserveReminder counts reminder outcomes: "scheduled", "skipped", "sent" or "failed".
func (m *BookingMetrics) ObserveReminder(status string) {
	if m == nil {
		return
	}
	m.remindersTotal.WithLabelValues(status).Inc()
}
