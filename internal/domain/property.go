package domain

import (
	"strings"
	"time"
)

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
)

func (t PropertyType) Valid() bool {
	return t == PropertyTypeResidential || t == PropertyTypeCommercial
}

type Property struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	Name      string       `json:"name"`
	Type      PropertyType `json:"property_type"`
	Address   string       `json:"address"`
	City      *string      `json:"city"`
	State     *string      `json:"state"`
	ZipCode   *string      `json:"zip_code"`
	Notes     *string      `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Validate trims the free-text fields and checks the required ones.
func (p *Property) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	if p.Name == "" {
		return NewValidationError("name", "is required")
	}
	if p.Address == "" {
		return NewValidationError("address", "is required")
	}
	if p.Type == "" {
		p.Type = PropertyTypeResidential
	}
	if !p.Type.Valid() {
		return NewValidationError("property_type", "must be residential or commercial")
	}
	return nil
}
