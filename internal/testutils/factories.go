package testutils

import (
	"time"

	"network-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		ID:               uuid.New(),
		OrganizationName: "Test Organization " + uuid.New().String()[:8],
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

// WithOrganizationName sets a custom organization name
func (f *TenantFactory) WithOrganizationName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.OrganizationName = name
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password hash matches
// the plaintext "secret123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	return &models.User{
		ID:           id,
		TenantID:     uuid.New(),
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// WithTenant sets the tenant ID for the user
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OwnershipFactory provides methods to create test DeviceOwnership data
type OwnershipFactory struct{}

// NewOwnershipFactory creates a new OwnershipFactory
func NewOwnershipFactory() *OwnershipFactory {
	return &OwnershipFactory{}
}

// Create creates a test DeviceOwnership with default values
func (f *OwnershipFactory) Create() *models.DeviceOwnership {
	return &models.DeviceOwnership{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		DeviceID:  1,
		CreatedAt: time.Now(),
	}
}

// For sets the tenant and device for the ownership record
func (f *OwnershipFactory) For(tenantID uuid.UUID, deviceID int) *models.DeviceOwnership {
	ownership := f.Create()
	ownership.TenantID = tenantID
	ownership.DeviceID = deviceID
	return ownership
}
