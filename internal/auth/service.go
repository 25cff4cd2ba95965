package auth

import (
	"errors"
	"fmt"
	"time"

	"network-portal-backend/internal/config"
	"network-portal-backend/internal/database/models"
	apperrors "network-portal-backend/internal/errors"
	"network-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTTL   = time.Hour
	bcryptCost = 10
)

// AuthService provides registration, login and token verification
type AuthService struct {
	cfg        *config.Config
	db         *gorm.DB
	tenantRepo repository.TenantRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// AuthClaims represents JWT token claims. Tokens are stateless: validity is
// determined purely by signature and expiry at verification time.
type AuthClaims struct {
	UserID   string `json:"user_id" example:"8f14e45f-ea12-4f0a-9d7b-0b6ad9f0c1aa"`
	TenantID string `json:"tenant_id" example:"b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e"`
	Email    string `json:"email" example:"admin@acme.com"`
	jwt.RegisteredClaims
}

// RegisterRequest represents the request to register a tenant with its first user
type RegisterRequest struct {
	OrganizationName string `json:"organizationName" validate:"required,min=1,max=200"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=1"`
}

// RegisterResponse represents the response for a successful registration
type RegisterResponse struct {
	Message  string `json:"message" example:"User registered successfully"`
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, db *gorm.DB, tenantRepo repository.TenantRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AuthService {
	return &AuthService{
		cfg:        cfg,
		db:         db,
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		validator:  validator,
	}
}

// Register creates a tenant and its first user as one atomic unit. Either
// both rows persist or neither does; a duplicate email rolls back the tenant
// insert and surfaces as ErrEmailExists.
func (s *AuthService) Register(req *RegisterRequest) (*RegisterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "organizationName, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var tenant models.Tenant
	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		tenant = models.Tenant{OrganizationName: req.OrganizationName}
		if err := s.tenantRepo.WithTx(tx).Create(&tenant); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		user = models.User{
			TenantID:     tenant.ID,
			Email:        req.Email,
			PasswordHash: string(hash),
		}
		if err := s.userRepo.WithTx(tx).Create(&user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrEmailExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		Message:  "User registered successfully",
		TenantID: tenant.ID.String(),
		UserID:   user.ID.String(),
		Email:    user.Email,
	}, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password both return ErrInvalidCredentials so the endpoint
// does not leak account existence.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}

// GenerateJWT creates a signed session token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		TenantID: user.TenantID.String(),
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "network-portal-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateJWT validates and parses a session token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// TenantID parses the tenant identifier embedded in the claims
func (c *AuthClaims) TenantUUID() (uuid.UUID, error) {
	return uuid.Parse(c.TenantID)
}
