package librenms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"network-portal-backend/internal/config"
	apperrors "network-portal-backend/internal/errors"
	"network-portal-backend/internal/logger"
)

//go:generate mockgen -source=client.go -destination=../mocks/librenms_mocks.go -package=mocks

// ClientInterface defines the upstream monitoring API operations the portal
// proxies. The upstream owns device telemetry; it is never consulted for
// security decisions.
type ClientInterface interface {
	GetDevice(ctx context.Context, deviceID int) (json.RawMessage, error)
	AddDevice(ctx context.Context, hostname, snmpCommunity string) (int, json.RawMessage, error)
	GetEventLog(ctx context.Context, deviceID, limit int) (json.RawMessage, error)
	GetGraph(ctx context.Context, deviceID int, graphType, from string) (*GraphStream, error)
}

// GraphStream is an open binary graph response. The caller must Close the
// Body; reading it streams the upstream image without buffering it whole.
type GraphStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// Client talks to a LibreNMS instance over its v0 REST API
type Client struct {
	baseURL     string
	apiToken    string
	snmpVersion string
	httpClient  *http.Client
}

// NewClient creates a new LibreNMS API client
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.LibreNMSTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.LibreNMSBaseURL, "/"),
		apiToken:    cfg.LibreNMSAPIToken,
		snmpVersion: cfg.LibreNMSSNMPVersion,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// deviceEnvelope is the shape LibreNMS wraps device lookups and creations in
type deviceEnvelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Devices []json.RawMessage `json:"devices"`
}

// eventlogEnvelope is the shape LibreNMS wraps eventlog listings in
type eventlogEnvelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Logs     json.RawMessage `json:"logs"`
	Eventlog json.RawMessage `json:"eventlog"`
}

type deviceIDField struct {
	DeviceID int `json:"device_id"`
}

// GetDevice fetches one device record by its upstream identifier.
// An upstream 404 maps to ErrDeviceNotFound.
func (c *Client) GetDevice(ctx context.Context, deviceID int) (json.RawMessage, error) {
	var env deviceEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v0/devices/%d", deviceID), "get device", &env); err != nil {
		return nil, err
	}
	if env.Status != "ok" || len(env.Devices) == 0 {
		return nil, apperrors.ErrDeviceNotFound
	}
	return env.Devices[0], nil
}

// AddDevice registers a new device with the monitoring system and returns
// the identifier it assigned along with the created record.
func (c *Client) AddDevice(ctx context.Context, hostname, snmpCommunity string) (int, json.RawMessage, error) {
	payload := map[string]string{
		"hostname":  hostname,
		"community": snmpCommunity,
		"version":   c.snmpVersion,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal device payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v0/devices", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, apperrors.NewUpstreamError("add device", 0, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperrors.NewUpstreamError("add device", resp.StatusCode, err.Error())
	}

	var env deviceEnvelope
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// LibreNMS reports rejections (bad hostname, duplicate) with a
		// message field; pass that along as the upstream detail.
		if json.Unmarshal(respBody, &env) == nil && env.Message != "" {
			return 0, nil, apperrors.NewUpstreamError("add device", resp.StatusCode, env.Message)
		}
		return 0, nil, apperrors.NewUpstreamError("add device", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, &env); err != nil {
		return 0, nil, apperrors.NewUpstreamError("add device", resp.StatusCode, "unexpected response shape")
	}
	if env.Status != "ok" || len(env.Devices) == 0 {
		return 0, nil, apperrors.NewUpstreamError("add device", resp.StatusCode, env.Message)
	}

	var idField deviceIDField
	if err := json.Unmarshal(env.Devices[0], &idField); err != nil || idField.DeviceID <= 0 {
		return 0, nil, apperrors.NewUpstreamError("add device", resp.StatusCode, "missing device_id in response")
	}

	return idField.DeviceID, env.Devices[0], nil
}

// GetEventLog fetches the most recent limit eventlog entries for a device
func (c *Client) GetEventLog(ctx context.Context, deviceID, limit int) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("limit", fmt.Sprintf("%d", limit))
	path := fmt.Sprintf("/api/v0/logs/eventlog/%d?%s", deviceID, v.Encode())

	var env eventlogEnvelope
	if err := c.getJSON(ctx, path, "get eventlog", &env); err != nil {
		return nil, err
	}
	if env.Status != "ok" {
		return nil, apperrors.NewUpstreamError("get eventlog", 0, env.Message)
	}
	// Older LibreNMS versions key the list as "eventlog", newer as "logs".
	if len(env.Logs) > 0 {
		return env.Logs, nil
	}
	if len(env.Eventlog) > 0 {
		return env.Eventlog, nil
	}
	return json.RawMessage("[]"), nil
}

// GetGraph opens a graph image stream for the device. from is the upstream
// relative-time expression, e.g. "-1d".
func (c *Client) GetGraph(ctx context.Context, deviceID int, graphType, from string) (*GraphStream, error) {
	v := url.Values{}
	v.Set("from", from)
	path := fmt.Sprintf("/api/v0/devices/%d/%s?%s", deviceID, url.PathEscape(graphType), v.Encode())

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("get graph", 0, err.Error())
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, apperrors.ErrDeviceNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, apperrors.NewUpstreamError("get graph", resp.StatusCode, string(detail))
	}

	return &GraphStream{
		Body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiToken)
	return req, nil
}

// getJSON performs a GET and decodes a JSON body, translating HTTP-level
// failures into the upstream error taxonomy.
func (c *Client) getJSON(ctx context.Context, path, operation string, target interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warnf("LibreNMS %s request failed", operation)
		return apperrors.NewUpstreamError(operation, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrDeviceNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return apperrors.NewUpstreamError(operation, resp.StatusCode, string(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return apperrors.NewUpstreamError(operation, resp.StatusCode, "unexpected response shape")
	}
	return nil
}
