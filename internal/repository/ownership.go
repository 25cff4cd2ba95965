package repository

import (
	"network-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipRepository handles database operations for device ownership
// records. Reads here sit on the authorization path, so they always go to
// the store; nothing is cached across requests.
type OwnershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository creates a new ownership repository
func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

// Create inserts a new ownership record. A duplicate (tenant_id, device_id)
// pair surfaces as gorm.ErrDuplicatedKey via the unique index.
func (r *OwnershipRepository) Create(ownership *models.DeviceOwnership) error {
	return r.db.Create(ownership).Error
}

// Exists reports whether the given tenant owns the given device
func (r *OwnershipRepository) Exists(tenantID uuid.UUID, deviceID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.DeviceOwnership{}).
		Where("tenant_id = ? AND device_id = ?", tenantID, deviceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListDeviceIDs returns all device identifiers owned by the tenant, ordered
// ascending. An empty result is a valid outcome, not an error.
func (r *OwnershipRepository) ListDeviceIDs(tenantID uuid.UUID) ([]int, error) {
	var ids []int
	err := r.db.Model(&models.DeviceOwnership{}).
		Where("tenant_id = ?", tenantID).
		Order("device_id ASC").
		Pluck("device_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes an ownership record. No HTTP surface uses this yet; it is
// the inverse of Create for operational cleanup.
func (r *OwnershipRepository) Delete(tenantID uuid.UUID, deviceID int) error {
	return r.db.
		Where("tenant_id = ? AND device_id = ?", tenantID, deviceID).
		Delete(&models.DeviceOwnership{}).Error
}
