package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hello383/Sway/internal/middleware"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubSignupService struct {
	resp   *dto.SubmitProfileResponse
	err    error
	gotReq *dto.SubmitProfileRequest
}

func (s *stubSignupService) SubmitProfile(ctx context.Context, db *gorm.DB, req *dto.SubmitProfileRequest) (*dto.SubmitProfileResponse, error) {
	s.gotReq = req
	return s.resp, s.err
}

func (s *stubSignupService) CampaignSignup(ctx context.Context, db *gorm.DB, req *dto.CampaignSignupRequest) (*dto.SubmitProfileResponse, error) {
	return s.resp, s.err
}

type stubProfileService struct {
	profile *dto.ProfileResponse
	list    []dto.ProfileResponse
	err     error
}

func (s *stubProfileService) GetProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error) {
	return s.profile, s.err
}

func (s *stubProfileService) UpdateProfile(db *gorm.DB, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return s.profile, s.err
}

func (s *stubProfileService) ListVisible(db *gorm.DB) ([]dto.ProfileResponse, error) {
	return s.list, s.err
}

func setupProfileRouter(signup *stubSignupService, profiles *stubProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	base := NewBaseHandler(validator.New())
	h := NewProfileHandler(base, signup, profiles)
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestSubmitProfileEndpoint(t *testing.T) {
	signup := &stubSignupService{
		resp: &dto.SubmitProfileResponse{Stored: true, Message: "Welcome to Sway!"},
	}
	router := setupProfileRouter(signup, &stubProfileService{})

	body := `{
		"fullName": "Aoife Byrne",
		"email": "aoife@example.com",
		"county": "Galway",
		"town": "Tuam",
		"role": "Software Engineer",
		"experience": "Senior (6-10 years)",
		"workHours": "Full-time",
		"profileVisibility": "visible"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"stored":true`)
	require.NotNil(t, signup.gotReq)
	assert.Equal(t, "Aoife Byrne", signup.gotReq.FullName)
}

func TestSubmitProfileEndpointValidation(t *testing.T) {
	signup := &stubSignupService{}
	router := setupProfileRouter(signup, &stubProfileService{})

	// Missing email and county.
	body := `{"fullName": "Aoife Byrne", "role": "Software Engineer", "experience": "Senior", "workHours": "Full-time"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	assert.Nil(t, signup.gotReq)
}

func TestSubmitProfileEndpointRejectsBadTier(t *testing.T) {
	router := setupProfileRouter(&stubSignupService{}, &stubProfileService{})

	body := `{
		"fullName": "Aoife Byrne",
		"email": "aoife@example.com",
		"county": "Galway",
		"role": "Software Engineer",
		"experience": "Senior (6-10 years)",
		"workHours": "Full-time",
		"profileVisibility": "everyone"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "profileVisibility")
}

func TestListVisibleEndpoint(t *testing.T) {
	profiles := &stubProfileService{
		list: []dto.ProfileResponse{
			{ID: "profile-1", FullName: "Aoife Byrne", County: "Galway"},
		},
	}
	router := setupProfileRouter(&stubSignupService{}, profiles)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aoife Byrne")
}
