package handlers

import (
	"net/http"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/response"
	"github.com/gin-gonic/gin"
)

// CreateEvent handles POST /events/:clubId. 404 when the club is unknown.
func (h *Handler) CreateEvent(c *gin.Context) {
	var event entities.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.BadRequest(c, "Invalid event payload")
		return
	}

	created, err := h.EventService.Create(c.Request.Context(), c.Param("clubId"), event)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListEvents handles GET /events.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.EventService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpcomingEvents handles GET /events/upcoming: today's and future events,
// nearest first.
func (h *Handler) UpcomingEvents(c *gin.Context) {
	events, err := h.EventService.Upcoming(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// EventsByClub handles GET /events/:clubId.
func (h *Handler) EventsByClub(c *gin.Context) {
	events, err := h.EventService.FindManyByClubID(c.Request.Context(), c.Param("clubId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// EventDetails handles GET /eventDetails/:id.
func (h *Handler) EventDetails(c *gin.Context) {
	event, err := h.EventService.FindOneByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// PatchEvent handles PATCH /events/:eventId with merge-patch semantics.
func (h *Handler) PatchEvent(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "Invalid patch payload")
		return
	}

	if err := h.EventService.Patch(c.Request.Context(), c.Param("eventId"), fields); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modified": true})
}

// DeleteEvent handles DELETE /events/:eventId.
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.EventService.Delete(c.Request.Context(), c.Param("eventId")); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type joinEventRequest struct {
	EventID  string `json:"eventId" binding:"required"`
	UserName string `json:"userName"`
}

// JoinEvent handles POST /events/join for the authenticated principal. A
// duplicate registration gets 409.
func (h *Handler) JoinEvent(c *gin.Context) {
	var req joinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid registration payload")
		return
	}

	registration, err := h.EventService.Join(c.Request.Context(), req.EventID, c.GetString(ContextEmail), req.UserName)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// IsJoined handles GET /events/isJoined?eventId=&userEmail= and returns the
// registration status, "none" when absent.
func (h *Handler) IsJoined(c *gin.Context) {
	status, err := h.EventService.RegistrationStatus(c.Request.Context(), c.Query("eventId"), c.Query("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// EventRegistrations handles GET /eventRegister/:eventId.
func (h *Handler) EventRegistrations(c *gin.Context) {
	registrations, err := h.EventService.RegistrationsByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}
