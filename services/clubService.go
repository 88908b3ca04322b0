package services

import (
	"context"
	"errors"
	"time"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/repositories"
	"golang.org/x/sync/errgroup"
)

type ClubService struct {
	clubRepository       ClubRepository
	membershipRepository MembershipRepository
	eventRepository      EventRepository
	now                  func() time.Time
}

func NewClubService(clubRepository ClubRepository, membershipRepository MembershipRepository, eventRepository EventRepository) *ClubService {
	return &ClubService{
		clubRepository:       clubRepository,
		membershipRepository: membershipRepository,
		eventRepository:      eventRepository,
		now:                  time.Now,
	}
}

// Create inserts a club owned by the calling manager. New clubs always start
// pending until an admin approves them.
func (s *ClubService) Create(ctx context.Context, club entities.Club, managerEmail string) (*entities.Club, error) {
	club.ManagerEmail = managerEmail
	club.Status = entities.ClubStatusPending
	club.CreatedAt = isoNow(s.now())
	club.UpdatedAt = isoNow(s.now())

	id, err := s.clubRepository.InsertOne(ctx, club)
	if err != nil {
		return nil, err
	}
	club.ID = id

	return &club, nil
}

func (s *ClubService) FindAll(ctx context.Context) ([]*entities.Club, error) {
	return s.clubRepository.FindAll(ctx)
}

func (s *ClubService) FindOneByID(ctx context.Context, id string) (*entities.Club, error) {
	return s.clubRepository.FindOneByID(ctx, id)
}

// FindApprovedWithMemberCounts attaches the active member count to every
// approved club, counting concurrently.
func (s *ClubService) FindApprovedWithMemberCounts(ctx context.Context) ([]*entities.ClubWithMembers, error) {
	clubs, err := s.clubRepository.FindManyByStatus(ctx, entities.ClubStatusApproved)
	if err != nil {
		return nil, err
	}

	result := make([]*entities.ClubWithMembers, len(clubs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, club := range clubs {
		group.Go(func() error {
			count, err := s.membershipRepository.CountActiveByClubID(groupCtx, club.ID.Hex())
			if err != nil {
				return err
			}

			result[i] = &entities.ClubWithMembers{Club: *club, MembersCount: count}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Patch merge-patches a club: only the supplied fields change and the
// identity field can never be rewritten. A nil patch (JSON null body) still
// stamps the update time.
func (s *ClubService) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["updateAt"] = isoNow(s.now())
	return s.clubRepository.UpdateFields(ctx, id, fields)
}

type ClubStats struct {
	MembersCount int64 `json:"membersCount"`
	EventsCount  int64 `json:"eventsCount"`
}

// Stats counts a club's active members and its events.
func (s *ClubService) Stats(ctx context.Context, clubID string) (*ClubStats, error) {
	var stats ClubStats

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		count, err := s.membershipRepository.CountActiveByClubID(groupCtx, clubID)
		stats.MembersCount = count
		return err
	})
	group.Go(func() error {
		count, err := s.eventRepository.CountByClubID(groupCtx, clubID)
		stats.EventsCount = count
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

type ClubPage struct {
	Club        *entities.Club    `json:"club"`
	MemberCount int64             `json:"memberCount"`
	IsMember    string            `json:"isMember"`
	Events      []*entities.Event `json:"events"`
}

// Page assembles the public club page: the club, its member count, the
// viewer's membership status and, for active members only, the club's events.
func (s *ClubService) Page(ctx context.Context, clubID, viewerEmail string) (*ClubPage, error) {
	club, err := s.clubRepository.FindOneByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.membershipRepository.CountByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	isMember := "none"
	if viewerEmail != "" {
		membership, err := s.membershipRepository.FindOneByClubAndEmail(ctx, clubID, viewerEmail)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if membership != nil {
			isMember = membership.Status
		}
	}

	events := make([]*entities.Event, 0)
	if isMember == entities.MembershipStatusActive {
		events, err = s.eventRepository.FindManyByClubID(ctx, clubID)
		if err != nil {
			return nil, err
		}
	}

	return &ClubPage{
		Club:        club,
		MemberCount: memberCount,
		IsMember:    isMember,
		Events:      events,
	}, nil
}
