package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminStats handles GET /admin/stats.
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.AnalyticsService.AdminStats(c.Request.Context(), c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// AdminAnalytics handles GET /admin/analytics: trailing 6-month signup and
// payment series.
func (h *Handler) AdminAnalytics(c *gin.Context) {
	analytics, err := h.AnalyticsService.AdminAnalytics(c.Request.Context(), c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// ManagerOverview handles GET /manager/overview.
func (h *Handler) ManagerOverview(c *gin.Context) {
	overview, err := h.AnalyticsService.ManagerOverview(c.Request.Context(), c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ManagerAnalytics handles GET /manager/analytics.
func (h *Handler) ManagerAnalytics(c *gin.Context) {
	analytics, err := h.AnalyticsService.ManagerAnalytics(c.Request.Context(), c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// MemberStats handles GET /member/stats?email=.
func (h *Handler) MemberStats(c *gin.Context) {
	stats, err := h.AnalyticsService.MemberStats(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// MemberClubs handles GET /member/my-clubs?email=.
func (h *Handler) MemberClubs(c *gin.Context) {
	clubs, err := h.AnalyticsService.MemberClubs(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, clubs)
}

// MemberEvents handles GET /member/my-events?email=.
func (h *Handler) MemberEvents(c *gin.Context) {
	events, err := h.AnalyticsService.MemberEvents(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// MemberUpcomingEvents handles GET /member/upcoming-events?email=.
func (h *Handler) MemberUpcomingEvents(c *gin.Context) {
	events, err := h.AnalyticsService.MemberUpcomingEvents(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
