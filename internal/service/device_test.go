package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"network-portal-backend/internal/database/models"
	apperrors "network-portal-backend/internal/errors"
	"network-portal-backend/internal/librenms"
	"network-portal-backend/internal/mocks"
	"network-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DeviceServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ownershipRepo *mocks.MockOwnershipRepositoryInterface
	upstream      *mocks.MockClientInterface
	service       *service.DeviceService
	tenantID      uuid.UUID
}

func (s *DeviceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ownershipRepo = mocks.NewMockOwnershipRepositoryInterface(s.ctrl)
	s.upstream = mocks.NewMockClientInterface(s.ctrl)
	s.service = service.NewDeviceService(s.ownershipRepo, s.upstream, validator.New())
	s.tenantID = uuid.New()
}

func (s *DeviceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDeviceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeviceServiceTestSuite))
}

func (s *DeviceServiceTestSuite) TestListDevicesEmptyOwnedSet() {
	s.ownershipRepo.EXPECT().ListDeviceIDs(s.tenantID).Return([]int{}, nil).Times(1)
	// No upstream expectations: an empty owned set must never reach upstream.

	devices, err := s.service.ListDevices(context.Background(), s.tenantID)
	s.Require().NoError(err)
	s.NotNil(devices)
	s.Empty(devices)
}

func (s *DeviceServiceTestSuite) TestListDevicesFetchesEachOwnedID() {
	s.ownershipRepo.EXPECT().ListDeviceIDs(s.tenantID).Return([]int{3, 7, 12}, nil).Times(1)
	gomock.InOrder(
		s.upstream.EXPECT().GetDevice(gomock.Any(), 3).Return(json.RawMessage(`{"device_id":3}`), nil),
		s.upstream.EXPECT().GetDevice(gomock.Any(), 7).Return(json.RawMessage(`{"device_id":7}`), nil),
		s.upstream.EXPECT().GetDevice(gomock.Any(), 12).Return(json.RawMessage(`{"device_id":12}`), nil),
	)

	devices, err := s.service.ListDevices(context.Background(), s.tenantID)
	s.Require().NoError(err)
	s.Require().Len(devices, 3)
	s.JSONEq(`{"device_id":3}`, string(devices[0]))
	s.JSONEq(`{"device_id":12}`, string(devices[2]))
}

func (s *DeviceServiceTestSuite) TestListDevicesSkipsDeviceMissingUpstream() {
	s.ownershipRepo.EXPECT().ListDeviceIDs(s.tenantID).Return([]int{3, 7}, nil).Times(1)
	s.upstream.EXPECT().GetDevice(gomock.Any(), 3).Return(nil, apperrors.ErrDeviceNotFound)
	s.upstream.EXPECT().GetDevice(gomock.Any(), 7).Return(json.RawMessage(`{"device_id":7}`), nil)

	devices, err := s.service.ListDevices(context.Background(), s.tenantID)
	s.Require().NoError(err)
	s.Require().Len(devices, 1)
	s.JSONEq(`{"device_id":7}`, string(devices[0]))
}

func (s *DeviceServiceTestSuite) TestListDevicesUpstreamFailurePropagates() {
	s.ownershipRepo.EXPECT().ListDeviceIDs(s.tenantID).Return([]int{3}, nil).Times(1)
	s.upstream.EXPECT().GetDevice(gomock.Any(), 3).
		Return(nil, apperrors.NewUpstreamError("get device", 500, "boom"))

	_, err := s.service.ListDevices(context.Background(), s.tenantID)
	s.Require().Error(err)
	s.True(apperrors.IsUpstream(err))
}

func (s *DeviceServiceTestSuite) TestGetDeviceOwned() {
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 42).Return(true, nil).Times(1)
	s.upstream.EXPECT().GetDevice(gomock.Any(), 42).Return(json.RawMessage(`{"device_id":42}`), nil)

	device, err := s.service.GetDevice(context.Background(), s.tenantID, 42)
	s.Require().NoError(err)
	s.JSONEq(`{"device_id":42}`, string(device))
}

func (s *DeviceServiceTestSuite) TestGetDeviceNotOwned() {
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 42).Return(false, nil).Times(1)
	// Denial happens before any upstream call.

	_, err := s.service.GetDevice(context.Background(), s.tenantID, 42)
	s.ErrorIs(err, apperrors.ErrDeviceNotFound)
}

// A device owned by another tenant and a device that does not exist at all
// must be indistinguishable to the caller.
func (s *DeviceServiceTestSuite) TestDenialRevealsNothing() {
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 10).Return(false, nil).Times(1)
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 99999).Return(false, nil).Times(1)

	_, errForeign := s.service.GetDevice(context.Background(), s.tenantID, 10)
	_, errMissing := s.service.GetDevice(context.Background(), s.tenantID, 99999)

	s.ErrorIs(errForeign, apperrors.ErrDeviceNotFound)
	s.ErrorIs(errMissing, apperrors.ErrDeviceNotFound)
	s.Equal(errForeign.Error(), errMissing.Error())
}

func (s *DeviceServiceTestSuite) TestOwnershipIsCheckedOnEveryRequest() {
	// First request sees the ownership, second does not. No caching of the
	// first decision may leak into the second request.
	gomock.InOrder(
		s.ownershipRepo.EXPECT().Exists(s.tenantID, 42).Return(true, nil),
		s.ownershipRepo.EXPECT().Exists(s.tenantID, 42).Return(false, nil),
	)
	s.upstream.EXPECT().GetDevice(gomock.Any(), 42).Return(json.RawMessage(`{"device_id":42}`), nil).Times(1)

	_, err := s.service.GetDevice(context.Background(), s.tenantID, 42)
	s.Require().NoError(err)

	_, err = s.service.GetDevice(context.Background(), s.tenantID, 42)
	s.ErrorIs(err, apperrors.ErrDeviceNotFound)
}

func (s *DeviceServiceTestSuite) TestGetEventLogOwned() {
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 42).Return(true, nil).Times(1)
	s.upstream.EXPECT().GetEventLog(gomock.Any(), 42, 20).Return(json.RawMessage(`[{"event_id":1}]`), nil)

	logs, err := s.service.GetEventLog(context.Background(), s.tenantID, 42)
	s.Require().NoError(err)
	s.JSONEq(`[{"event_id":1}]`, string(logs))
}

func (s *DeviceServiceTestSuite) TestGetEventLogNotOwned() {
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 42).Return(false, nil).Times(1)

	_, err := s.service.GetEventLog(context.Background(), s.tenantID, 42)
	s.ErrorIs(err, apperrors.ErrDeviceNotFound)
}

func (s *DeviceServiceTestSuite) TestGetGraphTimespanTranslation() {
	cases := map[string]string{
		"":      "-1d",
		"hour":  "-1h",
		"day":   "-1d",
		"week":  "-1w",
		"month": "-1m",
	}
	for timespan, from := range cases {
		s.ownershipRepo.EXPECT().Exists(s.tenantID, 5).Return(true, nil)
		s.upstream.EXPECT().GetGraph(gomock.Any(), 5, "device_bits", from).
			Return(&librenms.GraphStream{
				Body:        io.NopCloser(strings.NewReader("png")),
				ContentType: "image/png",
			}, nil)

		graph, err := s.service.GetGraph(context.Background(), s.tenantID, 5, "device_bits", timespan)
		s.Require().NoError(err, "timespan %q", timespan)
		s.Require().NoError(graph.Body.Close())
	}
}

func (s *DeviceServiceTestSuite) TestGetGraphInvalidTimespan() {
	// Rejected before the ownership check or any upstream call.
	_, err := s.service.GetGraph(context.Background(), s.tenantID, 5, "device_bits", "year")
	s.ErrorIs(err, apperrors.ErrInvalidTimespan)
	s.True(apperrors.IsValidation(err))
}

func (s *DeviceServiceTestSuite) TestGetGraphNotOwned() {
	s.ownershipRepo.EXPECT().Exists(s.tenantID, 5).Return(false, nil).Times(1)

	_, err := s.service.GetGraph(context.Background(), s.tenantID, 5, "device_bits", "day")
	s.ErrorIs(err, apperrors.ErrDeviceNotFound)
}

func (s *DeviceServiceTestSuite) TestAddDeviceSuccess() {
	s.upstream.EXPECT().AddDevice(gomock.Any(), "sw1.acme.net", "public").
		Return(17, json.RawMessage(`{"device_id":17,"hostname":"sw1.acme.net"}`), nil)
	s.ownershipRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.DeviceOwnership) error {
		s.Equal(s.tenantID, o.TenantID)
		s.Equal(17, o.DeviceID)
		return nil
	})

	resp, err := s.service.AddDevice(context.Background(), s.tenantID, &service.AddDeviceRequest{
		Hostname:      "sw1.acme.net",
		SNMPCommunity: "public",
	})
	s.Require().NoError(err)
	s.Equal(17, resp.DeviceID)
	s.Equal("Device added successfully", resp.Message)
}

func (s *DeviceServiceTestSuite) TestAddDeviceValidation() {
	_, err := s.service.AddDevice(context.Background(), s.tenantID, &service.AddDeviceRequest{Hostname: "sw1"})
	s.True(apperrors.IsValidation(err))

	_, err = s.service.AddDevice(context.Background(), s.tenantID, &service.AddDeviceRequest{SNMPCommunity: "public"})
	s.True(apperrors.IsValidation(err))
}

func (s *DeviceServiceTestSuite) TestAddDeviceUpstreamRejection() {
	s.upstream.EXPECT().AddDevice(gomock.Any(), "bad.host", "public").
		Return(0, nil, apperrors.NewUpstreamError("add device", 400, "Could not ping bad.host"))

	_, err := s.service.AddDevice(context.Background(), s.tenantID, &service.AddDeviceRequest{
		Hostname:      "bad.host",
		SNMPCommunity: "public",
	})
	s.True(apperrors.IsUpstream(err))
}

func (s *DeviceServiceTestSuite) TestAddDeviceDuplicateOwnership() {
	s.upstream.EXPECT().AddDevice(gomock.Any(), "sw1.acme.net", "public").
		Return(17, json.RawMessage(`{"device_id":17}`), nil)
	s.ownershipRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := s.service.AddDevice(context.Background(), s.tenantID, &service.AddDeviceRequest{
		Hostname:      "sw1.acme.net",
		SNMPCommunity: "public",
	})
	s.ErrorIs(err, apperrors.ErrOwnershipExists)
}

func (s *DeviceServiceTestSuite) TestAddDeviceOwnershipWriteFails() {
	s.upstream.EXPECT().AddDevice(gomock.Any(), "sw1.acme.net", "public").
		Return(17, json.RawMessage(`{"device_id":17}`), nil)
	s.ownershipRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset"))

	_, err := s.service.AddDevice(context.Background(), s.tenantID, &service.AddDeviceRequest{
		Hostname:      "sw1.acme.net",
		SNMPCommunity: "public",
	})

	// The device now exists upstream but is owned by nobody; the caller must
	// see a distinguishable failure, not a success.
	s.ErrorIs(err, apperrors.ErrOwnershipNotRecorded)
}
