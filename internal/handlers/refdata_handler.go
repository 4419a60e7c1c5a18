package handlers

import (
	"net/http"

	"github.com/hello383/Sway/internal/refdata"

	"github.com/gin-gonic/gin"
)

// RefdataHandler serves the static pick-lists the signup wizard renders:
// towns, roles, experience ladders and the rest. Everything here is compiled
// in; no database access.
type RefdataHandler struct {
	*BaseHandler
}

func NewRefdataHandler(base *BaseHandler) *RefdataHandler {
	return &RefdataHandler{BaseHandler: base}
}

func (h *RefdataHandler) RegisterRoutes(r *gin.RouterGroup) {
	ref := r.Group("/refdata")
	{
		ref.GET("/counties", h.ListCounties)
		ref.GET("/towns", h.SearchTowns)
		ref.GET("/roles", h.SearchRoles)
		ref.GET("/experience", h.ListExperience)
	}
}

func (h *RefdataHandler) ListCounties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": refdata.Counties()})
}

func (h *RefdataHandler) SearchTowns(c *gin.Context) {
	matches := refdata.SearchTowns(c.Query("q"))

	type townResult struct {
		Town   string `json:"town"`
		County string `json:"county"`
	}
	results := make([]townResult, 0, len(matches))
	for _, town := range matches {
		county, _ := refdata.CountyForTown(town)
		results = append(results, townResult{Town: town, County: county})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
}

func (h *RefdataHandler) SearchRoles(c *gin.Context) {
	query := c.Query("q")
	if query == "" && c.Query("grouped") == "true" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": refdata.RolesByCategory})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": refdata.SearchRoles(query)})
}

// ListExperience bundles the remaining wizard pick-lists into one payload.
func (h *RefdataHandler) ListExperience(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"experienceLevels":   refdata.ExperienceLevels,
			"workHours":          refdata.WorkHours,
			"employmentStatuses": refdata.EmploymentStatuses,
			"remoteRetreats":     refdata.RemoteRetreats,
			"workEnvironments":   refdata.WorkEnvironments,
		},
	})
}
