package handlers

import (
	"net/http"

	"github.com/clubsphere/backend/auth"
	"github.com/clubsphere/backend/entities"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router. Role gates are
// composed per route from the two middleware stages: credential verification,
// then the persisted-role check.
func RegisterRoutes(r *gin.Engine, h *Handler, verifier auth.TokenVerifier) {
	authed := RequireAuth(verifier)
	manager := RequireRole(h.UserService, entities.RoleClubManager)
	admin := RequireRole(h.UserService, entities.RoleAdmin)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from Server..")
	})

	// users
	r.POST("/user", h.UpsertUser)
	r.GET("/user/role", authed, h.GetUserRole)
	r.GET("/users", authed, admin, h.ListUsers)
	r.GET("/users/count", authed, h.CountUsers)
	r.PATCH("/update-role", authed, admin, h.UpdateUserRole)

	// clubs
	r.POST("/clubs", authed, manager, h.CreateClub)
	r.GET("/clubs", authed, h.ListClubs)
	r.GET("/clubs/approved", h.ListApprovedClubs)
	r.GET("/clubs/:id", h.GetClub)
	r.PATCH("/clubs/:id", authed, h.PatchClub)
	r.GET("/clubs/:id/stats", h.ClubStats)
	r.GET("/club-page/:id", h.ClubPage)

	// events
	r.POST("/events/join", authed, h.JoinEvent)
	r.POST("/events/:clubId", authed, manager, h.CreateEvent)
	r.GET("/events", h.ListEvents)
	r.GET("/events/upcoming", h.UpcomingEvents)
	r.GET("/events/isJoined", authed, h.IsJoined)
	r.GET("/events/:clubId", h.EventsByClub)
	r.GET("/eventDetails/:id", h.EventDetails)
	r.PATCH("/events/:eventId", authed, manager, h.PatchEvent)
	r.DELETE("/events/:eventId", authed, manager, h.DeleteEvent)
	r.GET("/eventRegister/:eventId", authed, manager, h.EventRegistrations)

	// memberships
	r.GET("/memberships/count/:clubId", h.MembershipCount)
	r.GET("/memberships/:clubId", authed, manager, h.MembershipsByClub)
	r.PATCH("/memberships/:id/expire", authed, manager, h.ExpireMembership)
	r.GET("/is-member", authed, h.IsMember)

	// payments
	r.POST("/create-checkout-session", authed, h.CreateCheckoutSession)
	r.POST("/payment-success", authed, h.PaymentSuccess)
	r.GET("/admin/payments", authed, admin, h.AdminPayments)
	r.GET("/member/payments", authed, h.MemberPayments)

	// dashboards
	r.GET("/admin/stats", authed, admin, h.AdminStats)
	r.GET("/admin/analytics", authed, admin, h.AdminAnalytics)
	r.GET("/manager/overview", authed, manager, h.ManagerOverview)
	r.GET("/manager/analytics", authed, manager, h.ManagerAnalytics)
	r.GET("/member/stats", authed, h.MemberStats)
	r.GET("/member/my-clubs", authed, h.MemberClubs)
	r.GET("/member/my-events", authed, h.MemberEvents)
	r.GET("/member/upcoming-events", authed, h.MemberUpcomingEvents)
}
