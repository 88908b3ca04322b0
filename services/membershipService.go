package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/payments"
	"github.com/clubsphere/backend/repositories"
)

type MembershipService struct {
	membershipRepository MembershipRepository
	paymentRepository    PaymentRepository
	clubRepository       ClubRepository
	checkout             payments.CheckoutProvider
	clientDomain         string
	now                  func() time.Time
}

func NewMembershipService(
	membershipRepository MembershipRepository,
	paymentRepository PaymentRepository,
	clubRepository ClubRepository,
	checkout payments.CheckoutProvider,
	clientDomain string,
) *MembershipService {
	return &MembershipService{
		membershipRepository: membershipRepository,
		paymentRepository:    paymentRepository,
		clubRepository:       clubRepository,
		checkout:             checkout,
		clientDomain:         clientDomain,
		now:                  time.Now,
	}
}

// CreateCheckoutSession opens a checkout session for a club's membership fee
// and returns the provider's payment URL. The fee and product details come
// from the club record, never from the client.
func (s *MembershipService) CreateCheckoutSession(ctx context.Context, clubID, memberEmail string) (string, error) {
	club, err := s.clubRepository.FindOneByID(ctx, clubID)
	if err != nil {
		return "", err
	}

	session, err := s.checkout.CreateSession(ctx, payments.CreateSessionParams{
		ProductName:        club.Name,
		ProductDescription: club.Description,
		ProductImage:       club.BannerImage,
		Currency:           "usd",
		UnitAmount:         int64(math.Round(club.MembershipFee * 100)),
		Quantity:           1,
		CustomerEmail:      memberEmail,
		SuccessURL:         s.clientDomain + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          s.clientDomain + "/clubs/" + clubID,
		Metadata: map[string]string{
			"clubId": clubID,
			"member": memberEmail,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return session.URL, nil
}

// PaymentConfirmation identifies the membership/payment pair produced (or
// previously produced) by a completed checkout session.
type PaymentConfirmation struct {
	PaymentID string `json:"paymentId"`
	MemberID  string `json:"memberId"`
}

// ConfirmPayment handles a client-driven payment completion notification.
//
// For a given transaction id at most one Membership and one Payment may ever
// exist. The Membership insert is the gate: its paymentId carries a unique
// index, so a concurrent duplicate notification loses the insert race and is
// treated as already processed. The Payment is written second; if a crash
// separates the pair, the next notification for the same session finds the
// Membership and re-inserts the missing Payment.
func (s *MembershipService) ConfirmPayment(ctx context.Context, sessionID string) (*PaymentConfirmation, error) {
	session, err := s.checkout.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	club, err := s.clubRepository.FindOneByID(ctx, session.Metadata["clubId"])
	if err != nil {
		return nil, err
	}

	existing, err := s.membershipRepository.FindOneByPaymentID(ctx, session.PaymentIntent)
	if err == nil {
		if err := s.ensurePayment(ctx, session, club, existing); err != nil {
			return nil, err
		}

		return &PaymentConfirmation{
			PaymentID: session.PaymentIntent,
			MemberID:  existing.ID.Hex(),
		}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if session.Status != payments.SessionStatusComplete {
		return nil, ErrPaymentNotProcessed
	}

	membership := entities.Membership{
		ClubID:      session.Metadata["clubId"],
		MemberEmail: session.Metadata["member"],
		MemberName:  session.CustomerDetails.Name,
		PaymentID:   session.PaymentIntent,
		Status:      entities.MembershipStatusActive,
		JoinedAt:    isoNow(s.now()),
	}

	memberID, err := s.membershipRepository.InsertOne(ctx, membership)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		// Lost the insert race: another notification processed this
		// transaction first.
		winner, err := s.membershipRepository.FindOneByPaymentID(ctx, session.PaymentIntent)
		if err != nil {
			return nil, err
		}
		if err := s.ensurePayment(ctx, session, club, winner); err != nil {
			return nil, err
		}

		return &PaymentConfirmation{
			PaymentID: session.PaymentIntent,
			MemberID:  winner.ID.Hex(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.paymentRepository.InsertOne(ctx, s.paymentFor(session, club)); err != nil {
		return nil, err
	}

	return &PaymentConfirmation{
		PaymentID: session.PaymentIntent,
		MemberID:  memberID.Hex(),
	}, nil
}

// ensurePayment re-inserts the Payment half of the pair when an earlier run
// crashed between the two inserts.
func (s *MembershipService) ensurePayment(ctx context.Context, session *payments.Session, club *entities.Club, membership *entities.Membership) error {
	exists, err := s.paymentRepository.ExistsByPaymentID(ctx, membership.PaymentID)
	if err != nil || exists {
		return err
	}

	_, err = s.paymentRepository.InsertOne(ctx, s.paymentFor(session, club))
	return err
}

func (s *MembershipService) paymentFor(session *payments.Session, club *entities.Club) entities.Payment {
	return entities.Payment{
		PaymentID:   session.PaymentIntent,
		ClubID:      session.Metadata["clubId"],
		ClubName:    club.Name,
		MemberEmail: session.Metadata["member"],
		Type:        entities.PaymentTypeMembership,
		Amount:      float64(session.AmountTotal) / 100,
		Status:      session.PaymentStatus,
		CreatedAt:   isoNow(s.now()),
	}
}

func (s *MembershipService) FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Membership, error) {
	return s.membershipRepository.FindManyByClubID(ctx, clubID)
}

func (s *MembershipService) CountByClubID(ctx context.Context, clubID string) (int64, error) {
	return s.membershipRepository.CountByClubID(ctx, clubID)
}

// Expire removes a membership. Whatever status the caller supplied, the net
// effect is deletion.
func (s *MembershipService) Expire(ctx context.Context, id string) error {
	return s.membershipRepository.DeleteOneByID(ctx, id)
}

// StatusFor reports a member's membership status in a club, or "none".
func (s *MembershipService) StatusFor(ctx context.Context, clubID, memberEmail string) (string, error) {
	membership, err := s.membershipRepository.FindOneByClubAndEmail(ctx, clubID, memberEmail)
	if errors.Is(err, repositories.ErrNotFound) {
		return "none", nil
	}
	if err != nil {
		return "", err
	}

	return membership.Status, nil
}
