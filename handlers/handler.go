package handlers

import (
	"errors"

	"github.com/clubsphere/backend/repositories"
	"github.com/clubsphere/backend/response"
	"github.com/clubsphere/backend/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	UserService       *services.UserService
	ClubService       *services.ClubService
	EventService      *services.EventService
	MembershipService *services.MembershipService
	PaymentService    *services.PaymentService
	AnalyticsService  *services.AnalyticsService
}

func NewHandler(
	userService *services.UserService,
	clubService *services.ClubService,
	eventService *services.EventService,
	membershipService *services.MembershipService,
	paymentService *services.PaymentService,
	analyticsService *services.AnalyticsService,
) *Handler {
	return &Handler{
		UserService:       userService,
		ClubService:       clubService,
		EventService:      eventService,
		MembershipService: membershipService,
		PaymentService:    paymentService,
		AnalyticsService:  analyticsService,
	}
}

// fail maps a service error onto the HTTP taxonomy: 404 for missing entities,
// 409 for conflicts, 502 for provider failures, 500 otherwise.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(c, "Not Found!")
	case errors.Is(err, services.ErrAlreadyRegistered):
		response.Conflict(c, "Already Registered!")
	case errors.Is(err, services.ErrPaymentNotProcessed):
		response.Conflict(c, "Payment Not Processed!")
	case errors.Is(err, services.ErrUpstream):
		log.Error().Err(err).Msg("upstream provider error")
		response.BadGateway(c, "Upstream Error!")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		response.Internal(c, "Server Error")
	}
}
