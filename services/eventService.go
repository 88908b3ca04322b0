package services

import (
	"context"
	"errors"
	"time"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/repositories"
)

type EventService struct {
	eventRepository        EventRepository
	clubRepository         ClubRepository
	registrationRepository EventRegistrationRepository
	now                    func() time.Time
}

func NewEventService(eventRepository EventRepository, clubRepository ClubRepository, registrationRepository EventRegistrationRepository) *EventService {
	return &EventService{
		eventRepository:        eventRepository,
		clubRepository:         clubRepository,
		registrationRepository: registrationRepository,
		now:                    time.Now,
	}
}

// Create inserts an event under a club. The club's name is snapshotted onto
// the event and never updated afterwards.
func (s *EventService) Create(ctx context.Context, clubID string, event entities.Event) (*entities.Event, error) {
	club, err := s.clubRepository.FindOneByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	event.ClubID = clubID
	event.ClubName = club.Name
	event.CreatedAt = isoNow(s.now())
	event.UpdatedAt = isoNow(s.now())

	id, err := s.eventRepository.InsertOne(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	return &event, nil
}

func (s *EventService) FindAll(ctx context.Context) ([]*entities.Event, error) {
	return s.eventRepository.FindAll(ctx)
}

func (s *EventService) FindOneByID(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepository.FindOneByID(ctx, id)
}

func (s *EventService) FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Event, error) {
	return s.eventRepository.FindManyByClubID(ctx, clubID)
}

// Upcoming lists events dated today or later, nearest first.
func (s *EventService) Upcoming(ctx context.Context) ([]*entities.Event, error) {
	today := s.now().UTC().Format(dateOnly)
	return s.eventRepository.FindUpcoming(ctx, today)
}

func (s *EventService) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["updateAt"] = isoNow(s.now())
	return s.eventRepository.UpdateFields(ctx, id, fields)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.eventRepository.DeleteOneByID(ctx, id)
}

// Join registers a user for an event. A second registration for the same
// (event, user) pair reports ErrAlreadyRegistered.
func (s *EventService) Join(ctx context.Context, eventID, userEmail, userName string) (*entities.EventRegistration, error) {
	registration := entities.EventRegistration{
		EventID:    eventID,
		UserEmail:  userEmail,
		UserName:   userName,
		Status:     entities.RegistrationStatusRegistered,
		RegisterAt: isoNow(s.now()),
	}

	id, err := s.registrationRepository.InsertOne(ctx, registration)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return nil, ErrAlreadyRegistered
	}
	if err != nil {
		return nil, err
	}
	registration.ID = id

	return &registration, nil
}

// RegistrationStatus reports a user's registration status for an event, or
// "none".
func (s *EventService) RegistrationStatus(ctx context.Context, eventID, userEmail string) (string, error) {
	registration, err := s.registrationRepository.FindOneByEventAndEmail(ctx, eventID, userEmail)
	if errors.Is(err, repositories.ErrNotFound) {
		return "none", nil
	}
	if err != nil {
		return "", err
	}

	return registration.Status, nil
}

func (s *EventService) RegistrationsByEvent(ctx context.Context, eventID string) ([]*entities.EventRegistration, error) {
	return s.registrationRepository.FindManyByEventID(ctx, eventID)
}
