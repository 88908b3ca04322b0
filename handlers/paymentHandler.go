package handlers

import (
	"net/http"

	"github.com/clubsphere/backend/response"
	"github.com/gin-gonic/gin"
)

type createCheckoutRequest struct {
	ClubID string `json:"clubId" binding:"required"`
}

// CreateCheckoutSession handles POST /create-checkout-session and returns the
// provider's payment URL. The membership fee comes from the club record.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid checkout payload")
		return
	}

	url, err := h.MembershipService.CreateCheckoutSession(c.Request.Context(), req.ClubID, c.GetString(ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

type paymentSuccessRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// PaymentSuccess handles POST /payment-success: the client-driven completion
// notification. Repeated notifications for the same transaction return the
// same membership and payment identifiers.
func (h *Handler) PaymentSuccess(c *gin.Context) {
	var req paymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payment payload")
		return
	}

	confirmation, err := h.MembershipService.ConfirmPayment(c.Request.Context(), req.SessionID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

// AdminPayments handles GET /admin/payments.
func (h *Handler) AdminPayments(c *gin.Context) {
	payments, err := h.PaymentService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// MemberPayments handles GET /member/payments?email=, newest first.
func (h *Handler) MemberPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "Email required")
		return
	}

	payments, err := h.PaymentService.FindManyByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
