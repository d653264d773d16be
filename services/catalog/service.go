// File: services/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"strings"

	"agendly/database/repository"
	"agendly/models"

	"go.uber.org/zap"
)

func (s *DefaultCatalogService) validate(input *models.ServiceInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return models.NewValidationError("name", "is required")
	}
	if input.Duration <= 0 {
		return models.NewValidationError("duration", "must be a positive number of minutes")
	}
	if input.Price < 0 {
		return models.NewValidationError("price", "must not be negative")
	}
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	if input.Currency == "" {
		input.Currency = s.DefaultCurrency
	}
	return nil
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, storeID string, input models.ServiceInput) (*models.Service, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	now := s.Now().UTC()
	svc := &models.Service{
		ID:          s.NewID(),
		StoreID:     storeID,
		Name:        input.Name,
		Description: strings.TrimSpace(input.Description),
		Duration:    input.Duration,
		Price:       input.Price,
		Currency:    input.Currency,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.Logger.Info("service created", zap.String("storeID", storeID), zap.String("serviceID", svc.ID))
	return svc, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, storeID, id string) (*models.Service, error) {
	svc, err := s.Repo.FindByID(ctx, storeID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &models.NotFoundError{Resource: "service", ID: id}
	}
	return svc, err
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, storeID string, activeOnly bool) ([]models.Service, error) {
	return s.Repo.ListByStore(ctx, storeID, activeOnly)
}

// UpdateService replaces the editable fields. Existing appointments keep their own copy of
// name, price and duration.
func (s *DefaultCatalogService) UpdateService(
	ctx context.Context,
	storeID, id string,
	input models.ServiceInput,
) (*models.Service, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	svc, err := s.GetService(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	svc.Name = input.Name
	svc.Description = strings.TrimSpace(input.Description)
	svc.Duration = input.Duration
	svc.Price = input.Price
	svc.Currency = input.Currency
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	if err := s.Repo.Update(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &models.NotFoundError{Resource: "service", ID: id}
		}
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) SetActive(ctx context.Context, storeID, id string, active bool) (*models.Service, error) {
	svc, err := s.Repo.SetActive(ctx, storeID, id, active)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &models.NotFoundError{Resource: "service", ID: id}
	}
	if err != nil {
		return nil, err
	}
	s.Logger.Info("service visibility changed",
		zap.String("storeID", storeID),
		zap.String("serviceID", id),
		zap.Bool("active", active))
	return svc, nil
}
