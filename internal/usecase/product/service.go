package product

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	pkgvalidator "github.com/Pesokrava/creator_catalogue/internal/pkg/validator"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// TagInvalidator drops every cache entry tracked under a tag
type TagInvalidator interface {
	InvalidateTag(ctx context.Context, tag string) error
}

// Service handles product business logic
type Service struct {
	repo      domain.ProductRepository
	cache     TagInvalidator
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewService creates a new product service
func NewService(repo domain.ProductRepository, cache TagInvalidator, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		validate:  pkgvalidator.Get(),
		logger:    log,
	}
}

// Create creates a new product. Products start as drafts unless a status is given.
func (s *Service) Create(ctx context.Context, product *domain.Product) error {
	if product.Status == "" {
		product.Status = domain.ProductStatusDraft
	}

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.afterMutation(ctx, domain.EventProductCreated, product.ID, product.CreatorID)

	s.logger.WithFields(map[string]any{
		"product_id": product.ID,
		"creator_id": product.CreatorID,
		"name":       product.Name,
	}).Info("Product created successfully")

	return nil
}

// GetByID retrieves a product by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	return product, nil
}

// List retrieves a paginated list of products, optionally for one creator
func (s *Service) List(ctx context.Context, creatorID *uuid.UUID, limit, offset int) ([]*domain.Product, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.List(ctx, creatorID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, creatorID)
	if err != nil {
		s.logger.Error("Failed to count products", err)
		return nil, 0, err
	}

	return products, total, nil
}

// Update updates an existing product. Status is changed through SetStatus only.
func (s *Service) Update(ctx context.Context, product *domain.Product) error {
	existing, err := s.repo.GetByID(ctx, product.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get existing product", err)
		}
		return err
	}

	product.CreatorID = existing.CreatorID
	product.Status = existing.Status

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", err)
		return err
	}

	s.afterMutation(ctx, domain.EventProductUpdated, product.ID, product.CreatorID)

	s.logger.WithFields(map[string]any{
		"product_id": product.ID,
		"version":    product.Version,
	}).Info("Product updated successfully")

	return nil
}

// SetStatus publishes, archives or reverts a product to draft
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProductStatus) error {
	switch status {
	case domain.ProductStatusDraft, domain.ProductStatusPublished, domain.ProductStatusArchived:
	default:
		return domain.ErrInvalidInput
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for status change", err)
		}
		return err
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		s.logger.Error("Failed to set product status", err)
		return err
	}

	s.afterMutation(ctx, domain.EventProductStatusChanged, id, product.CreatorID)

	s.logger.WithFields(map[string]any{
		"product_id": id,
		"from":       product.Status,
		"to":         status,
	}).Info("Product status changed")

	return nil
}

// Delete soft-deletes a product
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for deletion", err)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	s.afterMutation(ctx, domain.EventProductDeleted, id, product.CreatorID)

	s.logger.WithFields(map[string]any{
		"product_id": id,
	}).Info("Product deleted successfully")

	return nil
}

// afterMutation drops derived cache entries and announces the change
func (s *Service) afterMutation(ctx context.Context, eventType string, productID, creatorID uuid.UUID) {
	if err := s.cache.InvalidateTag(ctx, domain.ProductsCacheTag); err != nil {
		s.logger.Warnf("Failed to invalidate %s cache tag: %v", domain.ProductsCacheTag, err)
	}

	event := domain.ProductEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: productID,
		CreatorID: creatorID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for product %s", productID)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), domain.ProductEventsSubject, data); err != nil {
			s.logger.Errorf(err, "Failed to publish %s for product %s", eventType, productID)
		}
	}()
}
