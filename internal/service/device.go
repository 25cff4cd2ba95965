package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"network-portal-backend/internal/database/models"
	apperrors "network-portal-backend/internal/errors"
	"network-portal-backend/internal/librenms"
	"network-portal-backend/internal/logger"
	"network-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// eventLogLimit bounds how many eventlog entries one request returns
const eventLogLimit = 20

// timespanToFrom maps the public timespan parameter to the upstream's
// relative time-range expression. This is the fixed contract for the graph
// endpoint; unknown values are rejected rather than passed through.
var timespanToFrom = map[string]string{
	"hour":  "-1h",
	"day":   "-1d",
	"week":  "-1w",
	"month": "-1m",
}

// DeviceService is the access-control gate and upstream proxy for
// device-scoped operations. Every operation authorizes against the ownership
// table before the first upstream call that would reveal device data, and
// the decision is re-checked on every request rather than cached: ownership
// can change between requests, and a stale positive grant is a security
// defect where a stale denial is merely inconvenient.
type DeviceService struct {
	ownershipRepo repository.OwnershipRepositoryInterface
	upstream      librenms.ClientInterface
	validator     *validator.Validate
}

// NewDeviceService creates a new device service
func NewDeviceService(ownershipRepo repository.OwnershipRepositoryInterface, upstream librenms.ClientInterface, validator *validator.Validate) *DeviceService {
	return &DeviceService{
		ownershipRepo: ownershipRepo,
		upstream:      upstream,
		validator:     validator,
	}
}

// AddDeviceRequest represents the request to register a device
type AddDeviceRequest struct {
	Hostname      string `json:"hostname" validate:"required,min=1,max=255"`
	SNMPCommunity string `json:"snmp_community" validate:"required,min=1,max=100"`
}

// AddDeviceResponse represents the response for a registered device
type AddDeviceResponse struct {
	Message  string          `json:"message" example:"Device added successfully"`
	DeviceID int             `json:"device_id"`
	Device   json.RawMessage `json:"device"`
}

// authorizeDevice consults the ownership table for the exact (tenant,
// device) pair. A device owned by another tenant and a device that does not
// exist produce the same ErrDeviceNotFound, so the error reveals nothing
// about foreign devices.
func (s *DeviceService) authorizeDevice(tenantID uuid.UUID, deviceID int) error {
	owned, err := s.ownershipRepo.Exists(tenantID, deviceID)
	if err != nil {
		return fmt.Errorf("failed to check device ownership: %w", err)
	}
	if !owned {
		return apperrors.ErrDeviceNotFound
	}
	return nil
}

// ListDevices returns the device records for every device the tenant owns,
// in ascending device-id order. A tenant with no ownership records gets an
// empty list without any upstream call.
func (s *DeviceService) ListDevices(ctx context.Context, tenantID uuid.UUID) ([]json.RawMessage, error) {
	ids, err := s.ownershipRepo.ListDeviceIDs(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned devices: %w", err)
	}

	devices := make([]json.RawMessage, 0, len(ids))
	if len(ids) == 0 {
		return devices, nil
	}

	log := logger.WithContext(ctx)
	for _, id := range ids {
		device, err := s.upstream.GetDevice(ctx, id)
		if err != nil {
			// An owned device the upstream no longer knows is skipped; the
			// ownership record outliving the upstream device should not take
			// down the whole listing.
			if errors.Is(err, apperrors.ErrDeviceNotFound) {
				log.WithField("device_id", id).Warn("owned device missing upstream, skipping")
				continue
			}
			return nil, err
		}
		devices = append(devices, device)
	}
	return devices, nil
}

// GetDevice returns the upstream device record unmodified, provided the
// tenant owns the device.
func (s *DeviceService) GetDevice(ctx context.Context, tenantID uuid.UUID, deviceID int) (json.RawMessage, error) {
	if err := s.authorizeDevice(tenantID, deviceID); err != nil {
		return nil, err
	}
	return s.upstream.GetDevice(ctx, deviceID)
}

// GetEventLog returns the most recent eventlog entries for an owned device,
// verbatim from upstream and bounded in size.
func (s *DeviceService) GetEventLog(ctx context.Context, tenantID uuid.UUID, deviceID int) (json.RawMessage, error) {
	if err := s.authorizeDevice(tenantID, deviceID); err != nil {
		return nil, err
	}
	return s.upstream.GetEventLog(ctx, deviceID, eventLogLimit)
}

// GetGraph opens an upstream graph image stream for an owned device. The
// timespan (hour|day|week|month, default day) is translated to the
// upstream's relative time-range form. The caller owns the returned stream.
func (s *DeviceService) GetGraph(ctx context.Context, tenantID uuid.UUID, deviceID int, graphType, timespan string) (*librenms.GraphStream, error) {
	if timespan == "" {
		timespan = "day"
	}
	from, ok := timespanToFrom[timespan]
	if !ok {
		return nil, apperrors.ErrInvalidTimespan
	}

	if err := s.authorizeDevice(tenantID, deviceID); err != nil {
		return nil, err
	}
	return s.upstream.GetGraph(ctx, deviceID, graphType, from)
}

// AddDevice registers a device with the upstream system and records the
// tenant's ownership of it. The ownership write happens synchronously before
// the response: if it fails after the upstream device was created, the
// response reflects that failure (ErrOwnershipNotRecorded) rather than
// claiming success, since the device exists upstream but no tenant owns it.
func (s *DeviceService) AddDevice(ctx context.Context, tenantID uuid.UUID, req *AddDeviceRequest) (*AddDeviceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "hostname and snmp_community are required")
	}

	deviceID, device, err := s.upstream.AddDevice(ctx, req.Hostname, req.SNMPCommunity)
	if err != nil {
		return nil, err
	}

	ownership := &models.DeviceOwnership{
		TenantID: tenantID,
		DeviceID: deviceID,
	}
	if err := s.ownershipRepo.Create(ownership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOwnershipExists
		}
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"tenant_id": tenantID.String(),
			"device_id": deviceID,
		}).Error("ownership write failed after upstream device creation")
		return nil, apperrors.ErrOwnershipNotRecorded
	}

	return &AddDeviceResponse{
		Message:  "Device added successfully",
		DeviceID: deviceID,
		Device:   device,
	}, nil
}
