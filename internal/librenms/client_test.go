package librenms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"network-portal-backend/internal/config"
	apperrors "network-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(&config.Config{
		LibreNMSBaseURL:     serverURL,
		LibreNMSAPIToken:    "test-token",
		LibreNMSSNMPVersion: "v2c",
		LibreNMSTimeoutSec:  5,
	})
}

func TestGetDevice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/devices/42", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","devices":[{"device_id":42,"hostname":"sw1.acme.net"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	device, err := client.GetDevice(context.Background(), 42)
	require.NoError(t, err)
	assert.JSONEq(t, `{"device_id":42,"hostname":"sw1.acme.net"}`, string(device))
}

func TestGetDeviceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"Device not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetDevice(context.Background(), 99999)
	assert.ErrorIs(t, err, apperrors.ErrDeviceNotFound)
}

func TestGetDeviceEmptyEnvelope(t *testing.T) {
	// Some LibreNMS versions answer 200 with an empty device list instead
	// of a 404.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","devices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetDevice(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrDeviceNotFound)
}

func TestGetDeviceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("database gone"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetDevice(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestGetDeviceUnreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.GetDevice(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestAddDevice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v0/devices", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sw1.acme.net", payload["hostname"])
		assert.Equal(t, "public", payload["community"])
		assert.Equal(t, "v2c", payload["version"])

		_, _ = w.Write([]byte(`{"status":"ok","message":"Device added","devices":[{"device_id":17,"hostname":"sw1.acme.net"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deviceID, device, err := client.AddDevice(context.Background(), "sw1.acme.net", "public")
	require.NoError(t, err)
	assert.Equal(t, 17, deviceID)
	assert.JSONEq(t, `{"device_id":17,"hostname":"sw1.acme.net"}`, string(device))
}

func TestAddDeviceRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Could not ping bad.host"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, _, err := client.AddDevice(context.Background(), "bad.host", "public")
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "Could not ping bad.host")
}

func TestGetEventLog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/logs/eventlog/42", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"status":"ok","logs":[{"event_id":1,"message":"ifDown"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	logs, err := client.GetEventLog(context.Background(), 42, 20)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"event_id":1,"message":"ifDown"}]`, string(logs))
}

func TestGetEventLogLegacyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","eventlog":[{"event_id":2}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	logs, err := client.GetEventLog(context.Background(), 42, 20)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"event_id":2}]`, string(logs))
}

func TestGetEventLogEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	logs, err := client.GetEventLog(context.Background(), 42, 20)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(logs))
}

func TestGetGraph(t *testing.T) {
	image := "\x89PNG fake image bytes"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/devices/42/device_processor", r.URL.Path)
		assert.Equal(t, "-1w", r.URL.Query().Get("from"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte(image))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	graph, err := client.GetGraph(context.Background(), 42, "device_processor", "-1w")
	require.NoError(t, err)
	defer graph.Body.Close()

	assert.Equal(t, "image/png", graph.ContentType)
	body, err := io.ReadAll(graph.Body)
	require.NoError(t, err)
	assert.Equal(t, image, string(body))
}

func TestGetGraphNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetGraph(context.Background(), 42, "device_processor", "-1d")
	assert.ErrorIs(t, err, apperrors.ErrDeviceNotFound)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/devices/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok","devices":[{"device_id":1}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")
	_, err := client.GetDevice(context.Background(), 1)
	require.NoError(t, err)
}
