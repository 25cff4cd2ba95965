package auth

import (
	"net/http"
	"testing"

	"network-portal-backend/internal/mocks"
	"network-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	http     *testutils.HTTPTestSuite
	ctrl     *gomock.Controller
	userRepo *mocks.MockUserRepositoryInterface
	service  *AuthService
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.service = NewAuthService(testConfig(), nil, nil, s.userRepo, validator.New())

	handler := NewAuthHandler(s.service)
	s.http = testutils.SetupHTTPTest()
	s.http.Router.POST("/api/register", handler.Register)
	s.http.Router.POST("/api/login", handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegisterMissingFields() {
	rec := s.http.MakeRequest(http.MethodPost, "/api/register", map[string]string{
		"organizationName": "Acme",
		"email":            "a@acme.com",
	})
	testutils.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "All fields are required.")
}

func (s *AuthHandlerTestSuite) TestRegisterMalformedBody() {
	rec := s.http.MakeRequestWithHeaders(http.MethodPost, "/api/register", "{not json", map[string]string{
		"Content-Type": "application/json",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerTestSuite) TestLoginSuccess() {
	user := testUser(s.T())
	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	rec := s.http.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    user.Email,
		"password": "secret123",
	})
	s.Equal(http.StatusOK, rec.Code)

	var resp LoginResponse
	testutils.ParseJSONResponse(s.T(), rec, &resp)
	s.NotEmpty(resp.Token)

	claims, err := s.service.ValidateJWT(resp.Token)
	s.Require().NoError(err)
	s.Equal(user.TenantID.String(), claims.TenantID)
}

func (s *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	user := testUser(s.T())
	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	rec := s.http.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    user.Email,
		"password": "wrong",
	})
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials.")
}

func (s *AuthHandlerTestSuite) TestLoginUnknownEmail() {
	s.userRepo.EXPECT().GetByEmail("nobody@acme.com").Return(nil, gorm.ErrRecordNotFound)

	rec := s.http.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    "nobody@acme.com",
		"password": "whatever",
	})

	// Same response as a wrong password
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials.")
}

func (s *AuthHandlerTestSuite) TestLoginMissingFields() {
	rec := s.http.MakeRequest(http.MethodPost, "/api/login", map[string]string{"email": "a@acme.com"})
	testutils.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email and password are required.")
}
