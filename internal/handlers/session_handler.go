package handlers

import (
	"net/http"

	"github.com/hello383/Sway/internal/middleware"
	"github.com/hello383/Sway/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the authenticated visitor's own view: the post-login
// gate decision and their profile. Everything here sits behind AuthMiddleware.
type SessionHandler struct {
	*BaseHandler
	gateService    services.GateService
	profileService services.ProfileService
}

func NewSessionHandler(base *BaseHandler, gateService services.GateService, profileService services.ProfileService) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    base,
		gateService:    gateService,
		profileService: profileService,
	}
}

func (h *SessionHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/gate", h.GetGate)
		me.GET("/profile", middleware.RequireCompleteProfile(h.gateService), h.GetMyProfile)
	}
}

// GetGate tells the client where to send the visitor after login. A missing
// or campaign-only profile routes back into signup.
func (h *SessionHandler) GetGate(c *gin.Context) {
	session, ok := h.GetSession(c)
	if !ok {
		return
	}

	outcome, _, err := h.gateService.DecideForSession(h.GetDB(c), session)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"outcome": outcome}})
}

// GetMyProfile returns the caller's own profile. The RequireCompleteProfile
// guard has already re-run the gate, so a lookup miss here is a plain 404.
func (h *SessionHandler) GetMyProfile(c *gin.Context) {
	session, ok := h.GetSession(c)
	if !ok {
		return
	}

	_, profile, err := h.gateService.DecideForSession(h.GetDB(c), session)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"message": "Profile not found"}})
		return
	}

	resp, err := h.profileService.GetProfile(h.GetDB(c), profile.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}
