package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductEventsSubject is the NATS subject carrying product and variant changes
const ProductEventsSubject = "products.events"

// Event types published on ProductEventsSubject
const (
	EventProductCreated       = "product.created"
	EventProductUpdated       = "product.updated"
	EventProductStatusChanged = "product.status_changed"
	EventProductDeleted       = "product.deleted"
	EventVariantCreated       = "variant.created"
	EventVariantUpdated       = "variant.updated"
	EventVariantStockChanged  = "variant.stock_changed"
	EventVariantDeleted       = "variant.deleted"
)

// ProductEvent describes a catalogue mutation. VariantID is set for variant.* events only.
type ProductEvent struct {
	EventType string     `json:"event_type"`
	Timestamp time.Time  `json:"timestamp"`
	ProductID uuid.UUID  `json:"product_id"`
	CreatorID uuid.UUID  `json:"creator_id,omitempty"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
}
