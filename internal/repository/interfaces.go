package repository

import (
	"network-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	WithTx(tx *gorm.DB) TenantRepositoryInterface
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	WithTx(tx *gorm.DB) UserRepositoryInterface
}

// OwnershipRepositoryInterface defines the interface for device ownership
// repository operations. It backs every device-scoped authorization decision.
type OwnershipRepositoryInterface interface {
	Create(ownership *models.DeviceOwnership) error
	Exists(tenantID uuid.UUID, deviceID int) (bool, error)
	ListDeviceIDs(tenantID uuid.UUID) ([]int, error)
	Delete(tenantID uuid.UUID, deviceID int) error
}
