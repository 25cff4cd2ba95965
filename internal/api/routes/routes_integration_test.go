//go:build integration

package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"network-portal-backend/internal/config"
	"network-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// PortalTestSuite runs the full request path: router, auth middleware,
// ownership gate, and a stubbed monitoring backend.
type PortalTestSuite struct {
	testutils.BaseTestSuite
	router   *gin.Engine
	upstream *httptest.Server

	// state of the fake monitoring backend
	nextDeviceID int
	devices      map[string]bool
	getCalls     int
}

func (s *PortalTestSuite) SetupSuite() {
	base := testutils.SetupTestSuite(s.T())
	s.DB = base.DB
	s.Config = base.Config

	s.upstream = httptest.NewServer(http.HandlerFunc(s.serveUpstream))

	cfg := *s.Config
	cfg.LibreNMSBaseURL = s.upstream.URL
	cfg.LibreNMSAPIToken = "stub-token"
	cfg.LibreNMSSNMPVersion = "v2c"
	cfg.LibreNMSTimeoutSec = 5

	gin.SetMode(gin.TestMode)
	s.router = SetupRoutes(s.DB, &cfg)
}

func (s *PortalTestSuite) TearDownSuite() {
	s.upstream.Close()
}

func (s *PortalTestSuite) SetupTest() {
	s.CleanTestDB()
	s.nextDeviceID = 100
	s.devices = map[string]bool{}
	s.getCalls = 0
}

func TestPortalTestSuite(t *testing.T) {
	suite.Run(t, new(PortalTestSuite))
}

// serveUpstream is a minimal LibreNMS stand-in: device creation assigns
// sequential ids, lookups answer for known ids only.
func (s *PortalTestSuite) serveUpstream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost && r.URL.Path == "/api/v0/devices" {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		id := strconv.Itoa(s.nextDeviceID)
		s.nextDeviceID++
		s.devices[id] = true
		_, _ = w.Write([]byte(`{"status":"ok","devices":[{"device_id":` + id + `,"hostname":"` + payload["hostname"] + `"}]}`))
		return
	}

	if id, ok := strings.CutPrefix(r.URL.Path, "/api/v0/devices/"); ok {
		s.getCalls++
		if s.devices[id] {
			_, _ = w.Write([]byte(`{"status":"ok","devices":[{"device_id":` + id + `}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"Device not found"}`))
		return
	}

	w.WriteHeader(http.StatusNotFound)
}

func (s *PortalTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PortalTestSuite) registerAndLogin(org, email string) string {
	rec := s.request(http.MethodPost, "/api/register", "", map[string]string{
		"organizationName": org,
		"email":            email,
		"password":         "secret123",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.request(http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &login))
	s.Require().NotEmpty(login.Token)
	return login.Token
}

func (s *PortalTestSuite) TestFullTenantLifecycle() {
	token := s.registerAndLogin("Acme", "a@acme.com")

	// Fresh tenant: empty list, no upstream traffic
	rec := s.request(http.MethodGet, "/api/devices", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
	s.Zero(s.getCalls)

	// Register a device
	rec = s.request(http.MethodPost, "/api/devices", token, map[string]string{
		"hostname":       "r1",
		"snmp_community": "public",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		DeviceID int `json:"device_id"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotZero(created.DeviceID)

	// Owner sees it
	rec = s.request(http.MethodGet, "/api/devices/"+strconv.Itoa(created.DeviceID), token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	// A second tenant gets the same 404 as for a nonexistent device
	otherToken := s.registerAndLogin("Rival", "b@rival.com")

	recForeign := s.request(http.MethodGet, "/api/devices/"+strconv.Itoa(created.DeviceID), otherToken, nil)
	recMissing := s.request(http.MethodGet, "/api/devices/999999", otherToken, nil)
	s.Equal(http.StatusNotFound, recForeign.Code)
	s.Equal(http.StatusNotFound, recMissing.Code)
	s.JSONEq(recMissing.Body.String(), recForeign.Body.String())
}

func (s *PortalTestSuite) TestDuplicateRegistration() {
	first := s.request(http.MethodPost, "/api/register", "", map[string]string{
		"organizationName": "Acme",
		"email":            "a@acme.com",
		"password":         "secret123",
	})
	s.Require().Equal(http.StatusCreated, first.Code)

	second := s.request(http.MethodPost, "/api/register", "", map[string]string{
		"organizationName": "Acme Again",
		"email":            "a@acme.com",
		"password":         "other",
	})
	s.Equal(http.StatusConflict, second.Code)
}

func (s *PortalTestSuite) TestMissingTokenRejected() {
	rec := s.request(http.MethodGet, "/api/devices", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
