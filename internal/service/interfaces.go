package service

import (
	"context"
	"encoding/json"

	"network-portal-backend/internal/librenms"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DeviceServiceInterface defines the interface for the device service
type DeviceServiceInterface interface {
	ListDevices(ctx context.Context, tenantID uuid.UUID) ([]json.RawMessage, error)
	GetDevice(ctx context.Context, tenantID uuid.UUID, deviceID int) (json.RawMessage, error)
	GetEventLog(ctx context.Context, tenantID uuid.UUID, deviceID int) (json.RawMessage, error)
	GetGraph(ctx context.Context, tenantID uuid.UUID, deviceID int, graphType, timespan string) (*librenms.GraphStream, error)
	AddDevice(ctx context.Context, tenantID uuid.UUID, req *AddDeviceRequest) (*AddDeviceResponse, error)
}
