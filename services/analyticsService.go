package services

import (
	"context"
	"time"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// trailingWindow is the dashboard time-series length in calendar months.
const trailingWindow = 6

// AnalyticsService computes the dashboard numbers for the admin, manager and
// member views. Month series are always dense: one bucket per month of the
// trailing window, oldest first, zero where nothing happened.
type AnalyticsService struct {
	userRepository         UserRepository
	clubRepository         ClubRepository
	eventRepository        EventRepository
	membershipRepository   MembershipRepository
	registrationRepository EventRegistrationRepository
	paymentRepository      PaymentRepository
	analyticsRepository    AnalyticsRepository
	now                    func() time.Time
}

func NewAnalyticsService(
	userRepository UserRepository,
	clubRepository ClubRepository,
	eventRepository EventRepository,
	membershipRepository MembershipRepository,
	registrationRepository EventRegistrationRepository,
	paymentRepository PaymentRepository,
	analyticsRepository AnalyticsRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepository:         userRepository,
		clubRepository:         clubRepository,
		eventRepository:        eventRepository,
		membershipRepository:   membershipRepository,
		registrationRepository: registrationRepository,
		paymentRepository:      paymentRepository,
		analyticsRepository:    analyticsRepository,
		now:                    time.Now,
	}
}

type AdminStats struct {
	TotalUsers       int64            `json:"totalUsers"`
	TotalClubs       ClubStatusCounts `json:"totalClubs"`
	TotalMemberships int64            `json:"totalMemberships"`
	TotalEvents      int64            `json:"totalEvents"`
	TotalPayments    float64          `json:"totalPayments"`
}

type ClubStatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// AdminStats counts the whole platform. The calling admin is excluded from
// the user count.
func (s *AnalyticsService) AdminStats(ctx context.Context, adminEmail string) (*AdminStats, error) {
	var stats AdminStats

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		count, err := s.userRepository.CountExcept(groupCtx, adminEmail)
		stats.TotalUsers = count
		return err
	})
	group.Go(func() error {
		count, err := s.clubRepository.CountByStatus(groupCtx, entities.ClubStatusPending)
		stats.TotalClubs.Pending = count
		return err
	})
	group.Go(func() error {
		count, err := s.clubRepository.CountByStatus(groupCtx, entities.ClubStatusApproved)
		stats.TotalClubs.Approved = count
		return err
	})
	group.Go(func() error {
		count, err := s.clubRepository.CountByStatus(groupCtx, entities.ClubStatusRejected)
		stats.TotalClubs.Rejected = count
		return err
	})
	group.Go(func() error {
		count, err := s.membershipRepository.CountAll(groupCtx)
		stats.TotalMemberships = count
		return err
	})
	group.Go(func() error {
		count, err := s.eventRepository.CountAll(groupCtx)
		stats.TotalEvents = count
		return err
	})
	group.Go(func() error {
		total, err := s.paymentRepository.SumAll(groupCtx)
		stats.TotalPayments = total
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

type AdminAnalytics struct {
	Months       []string  `json:"months"`
	UsersData    []int64   `json:"usersData"`
	PaymentsData []float64 `json:"paymentsData"`
}

// AdminAnalytics returns trailing-window signup counts and payment sums.
func (s *AnalyticsService) AdminAnalytics(ctx context.Context, adminEmail string) (*AdminAnalytics, error) {
	months := trailingMonths(s.now(), trailingWindow)
	analytics := AdminAnalytics{Months: months}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		buckets, err := s.analyticsRepository.MonthlyCounts(groupCtx, "users", "created_at", bson.M{
			"email":      bson.M{"$ne": adminEmail},
			"created_at": bson.M{"$gte": months[0]},
		})
		if err != nil {
			return err
		}

		analytics.UsersData = toCounts(denseSeries(months, buckets))
		return nil
	})
	group.Go(func() error {
		buckets, err := s.analyticsRepository.MonthlySums(groupCtx, "payments", "createdAt", "amount", bson.M{
			"createdAt": bson.M{"$gte": months[0]},
		})
		if err != nil {
			return err
		}

		analytics.PaymentsData = denseSeries(months, buckets)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &analytics, nil
}

type MonthBucket struct {
	Month  string `json:"month"`
	Events int64  `json:"events"`
}

type ManagerOverview struct {
	ClubsManaged  int           `json:"clubsManaged"`
	TotalMembers  int64         `json:"totalMembers"`
	EventsCreated int64         `json:"eventsCreated"`
	TotalPayments float64       `json:"totalPayments"`
	MonthlyStats  []MonthBucket `json:"monthlyStats"`
}

// ManagerOverview aggregates across all clubs owned by the manager.
func (s *AnalyticsService) ManagerOverview(ctx context.Context, managerEmail string) (*ManagerOverview, error) {
	clubIDs, err := s.managedClubIDs(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	overview := ManagerOverview{
		ClubsManaged: len(clubIDs),
		MonthlyStats: make([]MonthBucket, 0),
	}
	months := trailingMonths(s.now(), trailingWindow)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		count, err := s.membershipRepository.CountActiveByClubIDs(groupCtx, clubIDs)
		overview.TotalMembers = count
		return err
	})
	group.Go(func() error {
		count, err := s.eventRepository.CountByClubIDs(groupCtx, clubIDs)
		overview.EventsCreated = count
		return err
	})
	group.Go(func() error {
		total, err := s.paymentRepository.SumByClubIDs(groupCtx, clubIDs)
		overview.TotalPayments = total
		return err
	})
	group.Go(func() error {
		buckets, err := s.analyticsRepository.MonthlyCounts(groupCtx, "events", "createdAt", bson.M{
			"clubId":    bson.M{"$in": clubIDs},
			"createdAt": bson.M{"$gte": months[0]},
		})
		if err != nil {
			return err
		}

		counts := toCounts(denseSeries(months, buckets))
		monthly := make([]MonthBucket, len(months))
		for i, month := range months {
			monthly[i] = MonthBucket{Month: month, Events: counts[i]}
		}
		overview.MonthlyStats = monthly
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &overview, nil
}

type ManagerAnalytics struct {
	Months           []string  `json:"months"`
	EventsPerMonth   []int64   `json:"eventsPerMonth"`
	PaymentsPerMonth []float64 `json:"paymentsPerMonth"`
}

// ManagerAnalytics returns trailing-window event counts and payment sums for
// the manager's clubs.
func (s *AnalyticsService) ManagerAnalytics(ctx context.Context, managerEmail string) (*ManagerAnalytics, error) {
	clubIDs, err := s.managedClubIDs(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	months := trailingMonths(s.now(), trailingWindow)
	analytics := ManagerAnalytics{Months: months}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		buckets, err := s.analyticsRepository.MonthlyCounts(groupCtx, "events", "createdAt", bson.M{
			"clubId":    bson.M{"$in": clubIDs},
			"createdAt": bson.M{"$gte": months[0]},
		})
		if err != nil {
			return err
		}

		analytics.EventsPerMonth = toCounts(denseSeries(months, buckets))
		return nil
	})
	group.Go(func() error {
		buckets, err := s.analyticsRepository.MonthlySums(groupCtx, "payments", "createdAt", "amount", bson.M{
			"clubId":    bson.M{"$in": clubIDs},
			"createdAt": bson.M{"$gte": months[0]},
		})
		if err != nil {
			return err
		}

		analytics.PaymentsPerMonth = denseSeries(months, buckets)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &analytics, nil
}

func (s *AnalyticsService) managedClubIDs(ctx context.Context, managerEmail string) ([]string, error) {
	clubs, err := s.clubRepository.FindManyByManagerEmail(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(clubs))
	for i, club := range clubs {
		ids[i] = club.ID.Hex()
	}

	return ids, nil
}

type MemberStats struct {
	TotalClubsJoined  int64 `json:"totalClubsJoined"`
	TotalEventsJoined int64 `json:"totalEventsJoined"`
}

func (s *AnalyticsService) MemberStats(ctx context.Context, memberEmail string) (*MemberStats, error) {
	var stats MemberStats

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		count, err := s.membershipRepository.CountActiveByEmail(groupCtx, memberEmail)
		stats.TotalClubsJoined = count
		return err
	})
	group.Go(func() error {
		count, err := s.registrationRepository.CountRegisteredByEmail(groupCtx, memberEmail)
		stats.TotalEventsJoined = count
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

type MemberClub struct {
	ClubID     string `json:"clubId"`
	ClubName   string `json:"clubName"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// MemberClubs joins the member's active memberships with the club records.
func (s *AnalyticsService) MemberClubs(ctx context.Context, memberEmail string) ([]MemberClub, error) {
	memberships, err := s.membershipRepository.FindManyActiveByEmail(ctx, memberEmail)
	if err != nil {
		return nil, err
	}

	clubIDs := make([]string, len(memberships))
	for i, membership := range memberships {
		clubIDs[i] = membership.ClubID
	}

	clubs, err := s.clubRepository.FindManyByIDs(ctx, clubIDs)
	if err != nil {
		return nil, err
	}

	clubsByID := make(map[string]*entities.Club, len(clubs))
	for _, club := range clubs {
		clubsByID[club.ID.Hex()] = club
	}

	result := make([]MemberClub, 0, len(memberships))
	for _, membership := range memberships {
		memberClub := MemberClub{
			ClubID:     membership.ClubID,
			Status:     membership.Status,
			ExpiryDate: membership.ExpiryDate,
		}
		if club, ok := clubsByID[membership.ClubID]; ok {
			memberClub.ClubName = club.Name
			memberClub.Location = club.Location
		}
		result = append(result, memberClub)
	}

	return result, nil
}

type MemberEvent struct {
	ID       primitive.ObjectID `json:"_id"`
	Title    string             `json:"title"`
	ClubName string             `json:"clubName"`
	Date     string             `json:"date"`
	Status   string             `json:"status"`
}

// MemberEvents joins the member's registrations with the event records.
func (s *AnalyticsService) MemberEvents(ctx context.Context, memberEmail string) ([]MemberEvent, error) {
	registrations, err := s.registrationRepository.FindManyByEmail(ctx, memberEmail)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]primitive.ObjectID, 0, len(registrations))
	for _, registration := range registrations {
		eventID, err := primitive.ObjectIDFromHex(registration.EventID)
		if err != nil {
			continue
		}
		eventIDs = append(eventIDs, eventID)
	}

	events, err := s.eventRepository.FindManyByEventIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	eventsByID := make(map[string]*entities.Event, len(events))
	for _, event := range events {
		eventsByID[event.ID.Hex()] = event
	}

	result := make([]MemberEvent, 0, len(registrations))
	for _, registration := range registrations {
		memberEvent := MemberEvent{
			ID:     registration.ID,
			Status: registration.Status,
		}
		if event, ok := eventsByID[registration.EventID]; ok {
			memberEvent.Title = event.Title
			memberEvent.ClubName = event.ClubName
			memberEvent.Date = event.Date
		}
		result = append(result, memberEvent)
	}

	return result, nil
}

// MemberUpcomingEvents lists future events of the clubs the member has an
// active membership in, nearest first.
func (s *AnalyticsService) MemberUpcomingEvents(ctx context.Context, memberEmail string) ([]*entities.Event, error) {
	memberships, err := s.membershipRepository.FindManyActiveByEmail(ctx, memberEmail)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return make([]*entities.Event, 0), nil
	}

	clubIDs := make([]string, len(memberships))
	for i, membership := range memberships {
		clubIDs[i] = membership.ClubID
	}

	today := s.now().UTC().Format(dateOnly)
	return s.eventRepository.FindUpcomingByClubIDs(ctx, clubIDs, today)
}
