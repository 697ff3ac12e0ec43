package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnnamedItem is the display name used for gear whose name is blank.
const UnnamedItem = "Unnamed Item"

// GearItem represents a single piece of purchased fishing equipment.
// Gear is independent of trips; deleting one never touches the other.
type GearItem struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name,omitempty"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Photo        []byte          `json:"photo,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DisplayName returns the item name with blanks coalesced to UnnamedItem.
func (g GearItem) DisplayName() string {
	if g.Name == "" {
		return UnnamedItem
	}
	return g.Name
}
