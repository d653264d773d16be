// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"agendly/database/repository"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoServiceRepo) FindByID(ctx context.Context, storeID, id string) (*models.Service, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"storeId": storeID, "id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("get service %s: %w", id, repository.Translate(err))
	}
	return &svc, nil
}

func (r *mongoServiceRepo) ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]models.Service, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"storeId": storeID}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *mongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("create service %s: %w", svc.ID, repository.Translate(err))
	}
	return nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	svc.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":        svc.Name,
		"description": svc.Description,
		"duration":    svc.Duration,
		"price":       svc.Price,
		"currency":    svc.Currency,
		"isActive":    svc.IsActive,
		"updatedAt":   svc.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"storeId": svc.StoreID, "id": svc.ID}, update)
	if err != nil {
		return fmt.Errorf("update service %s: %w", svc.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update service %s: %w", svc.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *mongoServiceRepo) SetActive(ctx context.Context, storeID, id string, active bool) (*models.Service, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var svc models.Service
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"storeId": storeID, "id": id}, update, opts).Decode(&svc)
	if err != nil {
		return nil, fmt.Errorf("toggle service %s: %w", id, repository.Translate(err))
	}
	return &svc, nil
}
