package handlers

import (
	"net/http"

	"github.com/hello383/Sway/internal/services"
	"github.com/hello383/Sway/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	*BaseHandler
	signupService services.SignupService
}

func NewCampaignHandler(base *BaseHandler, signupService services.SignupService) *CampaignHandler {
	return &CampaignHandler{
		BaseHandler:   base,
		signupService: signupService,
	}
}

func (h *CampaignHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/campaign-signup", h.CampaignSignup)
}

// CampaignSignup takes the lightweight homepage form. Repeat submissions are
// a 200 with alreadyExists set, never an error.
func (h *CampaignHandler) CampaignSignup(c *gin.Context) {
	var req dto.CampaignSignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.signupService.CampaignSignup(c.Request.Context(), h.GetDB(c), &req)
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
