package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceOwnership binds a tenant to a device identifier assigned by the
// upstream monitoring system. The (tenant_id, device_id) pair is the natural
// key; it is the sole source of truth for device-level access control.
// DeviceID is opaque to this system beyond equality.
type DeviceOwnership struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_device_ownerships_tenant_device" validate:"required"`
	DeviceID  int       `json:"device_id" gorm:"not null;uniqueIndex:idx_device_ownerships_tenant_device" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets the UUID if not already set
func (o *DeviceOwnership) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for DeviceOwnership
func (DeviceOwnership) TableName() string {
	return "device_ownerships"
}
