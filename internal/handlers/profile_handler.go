package handlers

import (
	"net/http"

	"github.com/hello383/Sway/internal/services"
	"github.com/hello383/Sway/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	signupService  services.SignupService
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, signupService services.SignupService, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		signupService:  signupService,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	{
		profiles.POST("", h.SubmitProfile)
		profiles.GET("", h.ListVisible)
		profiles.GET("/:id", h.GetProfile)
		profiles.PATCH("/:id", h.UpdateProfile)
	}
}

// SubmitProfile runs the signup wizard submission. Whether anything gets
// stored depends on the chosen visibility tier; a fresh row is a 201,
// everything else the wizard accepts (repeats, campaign-only) is a 200.
func (h *ProfileHandler) SubmitProfile(c *gin.Context) {
	var req dto.SubmitProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.signupService.SubmitProfile(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Stored {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "data": resp})
}

func (h *ProfileHandler) ListVisible(c *gin.Context) {
	profiles, err := h.profileService.ListVisible(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profiles})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}
