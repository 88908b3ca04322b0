package handlers

import (
	"net/http"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/response"
	"github.com/gin-gonic/gin"
)

// CreateClub handles POST /clubs. The club starts pending and is owned by the
// calling manager.
func (h *Handler) CreateClub(c *gin.Context) {
	var club entities.Club
	if err := c.ShouldBindJSON(&club); err != nil {
		response.BadRequest(c, "Invalid club payload")
		return
	}

	created, err := h.ClubService.Create(c.Request.Context(), club, c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListClubs handles GET /clubs.
func (h *Handler) ListClubs(c *gin.Context) {
	clubs, err := h.ClubService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, clubs)
}

// ListApprovedClubs handles GET /clubs/approved, each club carrying its
// active member count.
func (h *Handler) ListApprovedClubs(c *gin.Context) {
	clubs, err := h.ClubService.FindApprovedWithMemberCounts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, clubs)
}

// GetClub handles GET /clubs/:id.
func (h *Handler) GetClub(c *gin.Context) {
	club, err := h.ClubService.FindOneByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// PatchClub handles PATCH /clubs/:id with merge-patch semantics: only the
// supplied fields change, and a supplied _id is ignored.
func (h *Handler) PatchClub(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "Invalid patch payload")
		return
	}

	if err := h.ClubService.Patch(c.Request.Context(), c.Param("id"), fields); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modified": true})
}

// ClubStats handles GET /clubs/:id/stats.
func (h *Handler) ClubStats(c *gin.Context) {
	stats, err := h.ClubService.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ClubPage handles GET /club-page/:id. The optional ?email= query selects the
// viewer whose membership status is reported.
func (h *Handler) ClubPage(c *gin.Context) {
	page, err := h.ClubService.Page(c.Request.Context(), c.Param("id"), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
