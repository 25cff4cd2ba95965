package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"network-portal-backend/internal/auth"
	apperrors "network-portal-backend/internal/errors"
	"network-portal-backend/internal/logger"
	"network-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeviceHandler handles HTTP requests for tenant-scoped device operations
type DeviceHandler struct {
	service service.DeviceServiceInterface
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(service service.DeviceServiceInterface) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// ListDevices handles GET /api/devices
// @Summary List devices
// @Description List all devices owned by the authenticated tenant
// @Tags devices
// @Accept json
// @Produce json
// @Success 200 {array} object "Devices owned by the tenant, possibly empty"
// @Failure 401 {object} ErrorResponse "Missing token"
// @Failure 502 {object} ErrorResponse "Monitoring backend unavailable"
// @Security BearerAuth
// @Router /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	devices, err := h.service.ListDevices(c.Request.Context(), tenantID)
	if err != nil {
		h.respondError(c, err, "Failed to list devices")
		return
	}

	c.JSON(http.StatusOK, devices)
}

// GetDevice handles GET /api/devices/:id
// @Summary Get a device
// @Description Get one device record, provided the tenant owns it
// @Tags devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} object "Upstream device record"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Failure 502 {object} ErrorResponse "Monitoring backend unavailable"
// @Security BearerAuth
// @Router /devices/{id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	deviceID, ok := h.deviceIDParam(c)
	if !ok {
		return
	}

	device, err := h.service.GetDevice(c.Request.Context(), tenantID, deviceID)
	if err != nil {
		h.respondError(c, err, "Failed to get device")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", device)
}

// GetEventLog handles GET /api/devices/:id/eventlog
// @Summary Get device event log
// @Description Get the most recent event log entries for an owned device
// @Tags devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {array} object "Recent event log entries"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Failure 502 {object} ErrorResponse "Monitoring backend unavailable"
// @Security BearerAuth
// @Router /devices/{id}/eventlog [get]
func (h *DeviceHandler) GetEventLog(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	deviceID, ok := h.deviceIDParam(c)
	if !ok {
		return
	}

	logs, err := h.service.GetEventLog(c.Request.Context(), tenantID, deviceID)
	if err != nil {
		h.respondError(c, err, "Failed to get event log")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", logs)
}

// GetGraph handles GET /api/devices/:id/:graphType
// @Summary Get device graph image
// @Description Stream a graph image for an owned device. Accepts the session token via ?token= for embedded image elements.
// @Tags devices
// @Produce image/png
// @Param id path int true "Device ID"
// @Param graphType path string true "Graph type, e.g. device_processor"
// @Param timespan query string false "hour, day, week or month" default(day)
// @Param token query string false "Session token fallback for image elements"
// @Success 200 {file} binary "Graph image"
// @Failure 400 {object} ErrorResponse "Invalid timespan"
// @Failure 404 {object} ErrorResponse "Device not found"
// @Failure 502 {object} ErrorResponse "Monitoring backend unavailable"
// @Security BearerAuth
// @Router /devices/{id}/{graphType} [get]
func (h *DeviceHandler) GetGraph(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	deviceID, ok := h.deviceIDParam(c)
	if !ok {
		return
	}

	graph, err := h.service.GetGraph(c.Request.Context(), tenantID, deviceID, c.Param("graphType"), c.Query("timespan"))
	if err != nil {
		h.respondError(c, err, "Failed to get graph")
		return
	}
	defer graph.Body.Close()

	c.Header("Content-Type", graph.ContentType)
	if graph.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(graph.ContentLength, 10))
	}
	c.Status(http.StatusOK)

	// Headers are committed from here on. A mid-stream upstream failure
	// cannot change the status, so it is logged and the stream is cut.
	buf := make([]byte, 32*1024)
	if _, err := io.CopyBuffer(c.Writer, graph.Body, buf); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("graph stream aborted after headers sent")
		c.Abort()
	}
}

// AddDevice handles POST /api/devices
// @Summary Register a device
// @Description Register a device with the monitoring backend and record the tenant's ownership of it
// @Tags devices
// @Accept json
// @Produce json
// @Param device body service.AddDeviceRequest true "Device data"
// @Success 201 {object} service.AddDeviceResponse "Successfully registered device"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 409 {object} ErrorResponse "Device already owned"
// @Failure 502 {object} ErrorResponse "Upstream rejected the device"
// @Failure 500 {object} ErrorResponse "Ownership record failed after upstream creation"
// @Security BearerAuth
// @Router /devices [post]
func (h *DeviceHandler) AddDevice(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AddDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.AddDevice(c.Request.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnershipNotRecorded) {
			// Distinguishable from a plain 500 so the inconsistency can be
			// reconciled: the device exists upstream but is unowned.
			c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOwnershipNotRecorded.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrOwnershipExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondError(c, err, "Failed to add device")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// deviceIDParam parses the :id path parameter. A non-numeric identifier gets
// the same not-found response as an unowned device.
func (h *DeviceHandler) deviceIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrDeviceNotFound.Error()})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto the HTTP surface. Authorization
// denials come through as not-found so ownership of foreign devices cannot
// be probed; upstream detail stays in the logs.
func (h *DeviceHandler) respondError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsUpstream(err):
		logger.WithContext(c.Request.Context()).WithError(err).Error("upstream request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": message, "details": "monitoring backend error"})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
