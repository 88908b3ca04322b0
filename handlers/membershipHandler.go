package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MembershipsByClub handles GET /memberships/:clubId.
func (h *Handler) MembershipsByClub(c *gin.Context) {
	memberships, err := h.MembershipService.FindManyByClubID(c.Request.Context(), c.Param("clubId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// MembershipCount handles GET /memberships/count/:clubId.
func (h *Handler) MembershipCount(c *gin.Context) {
	count, err := h.MembershipService.CountByClubID(c.Request.Context(), c.Param("clubId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ExpireMembership handles PATCH /memberships/:id/expire. Whatever status the
// body carries, the membership record is removed.
func (h *Handler) ExpireMembership(c *gin.Context) {
	if err := h.MembershipService.Expire(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": true})
}

// IsMember handles GET /is-member?memberEmail=&clubId= and returns the
// membership status, "none" when absent.
func (h *Handler) IsMember(c *gin.Context) {
	status, err := h.MembershipService.StatusFor(c.Request.Context(), c.Query("clubId"), c.Query("memberEmail"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
