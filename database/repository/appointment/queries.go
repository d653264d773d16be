// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"

	"agendly/database/repository"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) FindByStoreAndDate(ctx context.Context, storeID, date string) ([]models.Appointment, error) {
	// Insertion order keeps the last-write-wins lookup deterministic.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, bson.M{"storeId": storeID, "date": date}, opts)
}

func (r *mongoAppointmentRepo) FindByStoreAndDateRange(ctx context.Context, storeID, from, to string) ([]models.Appointment, error) {
	filter := bson.M{
		"storeId": storeID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *mongoAppointmentRepo) FindByStore(ctx context.Context, storeID string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	return r.find(ctx, bson.M{"storeId": storeID}, opts)
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}
