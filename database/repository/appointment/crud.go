// File: database/repository/appointment/crud.go
package appointmentRepo

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

func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	appt.Active = appt.Status != models.StatusCancelled
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("insert appointment %s: %w", appt.ID, repository.Translate(err))
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, storeID, id string) (*models.Appointment, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"storeId": storeID, "id": id}).Decode(&appt)
	if err != nil {
		return nil, fmt.Errorf("get appointment %s: %w", id, repository.Translate(err))
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(
	ctx context.Context,
	storeID, id string,
	from, to models.AppointmentStatus,
) (*models.Appointment, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"storeId": storeID, "id": id, "status": from}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"active":    to != models.StatusCancelled,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update appointment %s status: %w", id, repository.Translate(err))
	}

	// Distinguish a missing appointment from a status that moved underneath us.
	count, cerr := r.coll.CountDocuments(ctx, bson.M{"storeId": storeID, "id": id})
	if cerr != nil {
		return nil, fmt.Errorf("update appointment %s status: %w", id, cerr)
	}
	if count == 0 {
		return nil, fmt.Errorf("update appointment %s status: %w", id, repository.ErrNotFound)
	}
	return nil, fmt.Errorf("update appointment %s status from %s: %w", id, from, repository.ErrVersionConflict)
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, storeID, id string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"storeId": storeID, "id": id})
	if err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete appointment %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *mongoAppointmentRepo) DeleteByStore(ctx context.Context, storeID string) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return 0, fmt.Errorf("delete appointments of store %s: %w", storeID, err)
	}
	return res.DeletedCount, nil
}
