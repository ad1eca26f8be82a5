package variant

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

// Service handles variant and stock business logic
type Service struct {
	repo      domain.VariantRepository
	products  domain.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewService creates a new variant service
func NewService(
	repo domain.VariantRepository,
	products domain.ProductRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		publisher: publisher,
		validate:  pkgvalidator.Get(),
		logger:    log,
	}
}

// Create creates a variant with its initial SKUs under an existing product
func (s *Service) Create(ctx context.Context, variant *domain.ProductVariant) error {
	if err := s.validate.Struct(variant); err != nil {
		s.logger.Error("Variant validation failed", err)
		return domain.ErrInvalidInput
	}
	if hasDuplicateSizes(variant.SKUs) {
		return domain.ErrInvalidInput
	}

	product, err := s.products.GetByID(ctx, variant.ProductID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for variant", err)
		}
		return err
	}

	if variant.Images == nil {
		variant.Images = []string{}
	}

	if err := s.repo.Create(ctx, variant); err != nil {
		s.logger.Error("Failed to create variant", err)
		return err
	}

	s.publishEvent(domain.EventVariantCreated, product, variant.ID)

	s.logger.WithFields(map[string]any{
		"variant_id": variant.ID,
		"product_id": variant.ProductID,
		"skus":       len(variant.SKUs),
	}).Info("Variant created successfully")

	return nil
}

// GetByID retrieves a variant with its SKUs
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductVariant, error) {
	variant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Variant not found: %s", id)
		} else {
			s.logger.Error("Failed to get variant", err)
		}
		return nil, err
	}

	return variant, nil
}

// ListByProduct retrieves the variants of a product with pagination
func (s *Service) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*domain.ProductVariant, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	variants, err := s.repo.GetByProductID(ctx, productID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list variants", err)
		return nil, 0, err
	}

	total, err := s.repo.CountByProductID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to count variants", err)
		return nil, 0, err
	}

	return variants, total, nil
}

// Update replaces price override and images of a variant
func (s *Service) Update(ctx context.Context, variant *domain.ProductVariant) error {
	existing, err := s.repo.GetByID(ctx, variant.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get existing variant", err)
		}
		return err
	}

	variant.ProductID = existing.ProductID
	variant.SKUs = nil
	if variant.Images == nil {
		variant.Images = []string{}
	}

	if err := s.validate.Struct(variant); err != nil {
		s.logger.Error("Variant validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, variant); err != nil {
		s.logger.Error("Failed to update variant", err)
		return err
	}
	variant.SKUs = existing.SKUs

	s.publishVariantEvent(ctx, domain.EventVariantUpdated, variant.ProductID, variant.ID)

	s.logger.WithFields(map[string]any{
		"variant_id": variant.ID,
		"product_id": variant.ProductID,
	}).Info("Variant updated successfully")

	return nil
}

// UpdateStock sets the stock of one size of a variant
func (s *Service) UpdateStock(ctx context.Context, sku *domain.SKU) error {
	if err := s.validate.Struct(sku); err != nil {
		s.logger.Error("SKU validation failed", err)
		return domain.ErrInvalidInput
	}

	variant, err := s.repo.GetByID(ctx, sku.VariantID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get variant for stock update", err)
		}
		return err
	}

	if err := s.repo.UpsertSKU(ctx, sku); err != nil {
		s.logger.Error("Failed to upsert SKU", err)
		return err
	}

	s.publishVariantEvent(ctx, domain.EventVariantStockChanged, variant.ProductID, variant.ID)

	s.logger.WithFields(map[string]any{
		"variant_id": sku.VariantID,
		"size":       sku.Size,
		"stock":      sku.Stock,
	}).Info("Stock updated")

	return nil
}

// Delete soft-deletes a variant
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	variant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get variant for deletion", err)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete variant", err)
		return err
	}

	s.publishVariantEvent(ctx, domain.EventVariantDeleted, variant.ProductID, id)

	s.logger.WithFields(map[string]any{
		"variant_id": id,
		"product_id": variant.ProductID,
	}).Info("Variant deleted successfully")

	return nil
}

func hasDuplicateSizes(skus []domain.SKU) bool {
	seen := make(map[string]struct{}, len(skus))
	for _, sku := range skus {
		if _, ok := seen[sku.Size]; ok {
			return true
		}
		seen[sku.Size] = struct{}{}
	}
	return false
}

// publishVariantEvent resolves the owning creator before publishing.
// A failed lookup still publishes, without the creator.
func (s *Service) publishVariantEvent(ctx context.Context, eventType string, productID, variantID uuid.UUID) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		s.logger.Warnf("Failed to resolve product %s for %s: %v", productID, eventType, err)
		product = &domain.Product{ID: productID}
	}
	s.publishEvent(eventType, product, variantID)
}

// publishEvent publishes a variant event (non-blocking)
func (s *Service) publishEvent(eventType string, product *domain.Product, variantID uuid.UUID) {
	event := domain.ProductEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: product.ID,
		CreatorID: product.CreatorID,
		VariantID: &variantID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for variant %s", variantID)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), domain.ProductEventsSubject, data); err != nil {
			s.logger.Errorf(err, "Failed to publish %s for variant %s", eventType, variantID)
		}
	}()
}
