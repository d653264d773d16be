package catalog

import (
	"context"
	"fmt"
	"time"

	catalogRepo "agendly/database/repository/catalog"
	"agendly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the services a store offers.
type CatalogService interface {
	CreateService(ctx context.Context, storeID string, input models.ServiceInput) (*models.Service, error)
	GetService(ctx context.Context, storeID, id string) (*models.Service, error)
	// ListServices returns the store's services; activeOnly serves the public picker.
	ListServices(ctx context.Context, storeID string, activeOnly bool) ([]models.Service, error)
	UpdateService(ctx context.Context, storeID, id string, input models.ServiceInput) (*models.Service, error)
	SetActive(ctx context.Context, storeID, id string, active bool) (*models.Service, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo            catalogRepo.ServiceRepository
	DefaultCurrency string
	Logger          *zap.Logger

	Now   func() time.Time
	NewID func() string
}

func NewDefaultCatalogService(repo catalogRepo.ServiceRepository, defaultCurrency string, logger *zap.Logger) (*DefaultCatalogService, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog service initialization error: repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatalogService{
		Repo:            repo,
		DefaultCurrency: defaultCurrency,
		Logger:          logger,
		Now:             time.Now,
		NewID:           uuid.NewString,
	}, nil
}
