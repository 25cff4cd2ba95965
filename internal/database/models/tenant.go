package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant represents the root entity for multi-tenancy. Every user and every
// device ownership record belongs to exactly one tenant.
type Tenant struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationName string    `json:"organization_name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Users      []User            `json:"users,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Ownerships []DeviceOwnership `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets the UUID if not already set
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
