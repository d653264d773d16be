// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository persists a store's catalogue of services.
type ServiceRepository interface {
	// FindByID returns repository.ErrNotFound when the store has no such service.
	FindByID(ctx context.Context, storeID, id string) (*models.Service, error)
	ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]models.Service, error)
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
	SetActive(ctx context.Context, storeID, id string, active bool) (*models.Service, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a MongoDB ServiceRepository.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
