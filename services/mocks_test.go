package services

import (
	"context"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/payments"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindOneByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) InsertOne(ctx context.Context, user entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdateLastLoggedIn(ctx context.Context, email, loggedInAt string) error {
	return m.Called(ctx, email, loggedInAt).Error(0)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, email, role string) error {
	return m.Called(ctx, email, role).Error(0)
}

func (m *mockUserRepo) FindAllExcept(ctx context.Context, email string) ([]*entities.User, error) {
	args := m.Called(ctx, email)
	if users := args.Get(0); users != nil {
		return users.([]*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) CountExcept(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type mockClubRepo struct{ mock.Mock }

func (m *mockClubRepo) InsertOne(ctx context.Context, club entities.Club) (primitive.ObjectID, error) {
	args := m.Called(ctx, club)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockClubRepo) FindOneByID(ctx context.Context, id string) (*entities.Club, error) {
	args := m.Called(ctx, id)
	if club := args.Get(0); club != nil {
		return club.(*entities.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) FindAll(ctx context.Context) ([]*entities.Club, error) {
	args := m.Called(ctx)
	if clubs := args.Get(0); clubs != nil {
		return clubs.([]*entities.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) FindManyByStatus(ctx context.Context, status string) ([]*entities.Club, error) {
	args := m.Called(ctx, status)
	if clubs := args.Get(0); clubs != nil {
		return clubs.([]*entities.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) FindManyByManagerEmail(ctx context.Context, email string) ([]*entities.Club, error) {
	args := m.Called(ctx, email)
	if clubs := args.Get(0); clubs != nil {
		return clubs.([]*entities.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) FindManyByIDs(ctx context.Context, ids []string) ([]*entities.Club, error) {
	args := m.Called(ctx, ids)
	if clubs := args.Get(0); clubs != nil {
		return clubs.([]*entities.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockClubRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockEventRepo struct{ mock.Mock }

func (m *mockEventRepo) InsertOne(ctx context.Context, event entities.Event) (primitive.ObjectID, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockEventRepo) FindOneByID(ctx context.Context, id string) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if event := args.Get(0); event != nil {
		return event.(*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]*entities.Event, error) {
	args := m.Called(ctx)
	if events := args.Get(0); events != nil {
		return events.([]*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Event, error) {
	args := m.Called(ctx, clubID)
	if events := args.Get(0); events != nil {
		return events.([]*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) FindManyByEventIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entities.Event, error) {
	args := m.Called(ctx, ids)
	if events := args.Get(0); events != nil {
		return events.([]*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) FindUpcoming(ctx context.Context, fromDate string) ([]*entities.Event, error) {
	args := m.Called(ctx, fromDate)
	if events := args.Get(0); events != nil {
		return events.([]*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) FindUpcomingByClubIDs(ctx context.Context, clubIDs []string, fromDate string) ([]*entities.Event, error) {
	args := m.Called(ctx, clubIDs, fromDate)
	if events := args.Get(0); events != nil {
		return events.([]*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockEventRepo) DeleteOneByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEventRepo) CountByClubID(ctx context.Context, clubID string) (int64, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEventRepo) CountByClubIDs(ctx context.Context, clubIDs []string) (int64, error) {
	args := m.Called(ctx, clubIDs)
	return args.Get(0).(int64), args.Error(1)
}

type mockMembershipRepo struct{ mock.Mock }

func (m *mockMembershipRepo) InsertOne(ctx context.Context, membership entities.Membership) (primitive.ObjectID, error) {
	args := m.Called(ctx, membership)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockMembershipRepo) FindOneByPaymentID(ctx context.Context, paymentID string) (*entities.Membership, error) {
	args := m.Called(ctx, paymentID)
	if membership := args.Get(0); membership != nil {
		return membership.(*entities.Membership), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMembershipRepo) FindOneByClubAndEmail(ctx context.Context, clubID, memberEmail string) (*entities.Membership, error) {
	args := m.Called(ctx, clubID, memberEmail)
	if membership := args.Get(0); membership != nil {
		return membership.(*entities.Membership), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMembershipRepo) FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Membership, error) {
	args := m.Called(ctx, clubID)
	if memberships := args.Get(0); memberships != nil {
		return memberships.([]*entities.Membership), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMembershipRepo) FindManyActiveByEmail(ctx context.Context, memberEmail string) ([]*entities.Membership, error) {
	args := m.Called(ctx, memberEmail)
	if memberships := args.Get(0); memberships != nil {
		return memberships.([]*entities.Membership), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMembershipRepo) DeleteOneByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMembershipRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMembershipRepo) CountByClubID(ctx context.Context, clubID string) (int64, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMembershipRepo) CountActiveByClubID(ctx context.Context, clubID string) (int64, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMembershipRepo) CountActiveByClubIDs(ctx context.Context, clubIDs []string) (int64, error) {
	args := m.Called(ctx, clubIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMembershipRepo) CountActiveByEmail(ctx context.Context, memberEmail string) (int64, error) {
	args := m.Called(ctx, memberEmail)
	return args.Get(0).(int64), args.Error(1)
}

type mockRegistrationRepo struct{ mock.Mock }

func (m *mockRegistrationRepo) InsertOne(ctx context.Context, registration entities.EventRegistration) (primitive.ObjectID, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockRegistrationRepo) FindOneByEventAndEmail(ctx context.Context, eventID, userEmail string) (*entities.EventRegistration, error) {
	args := m.Called(ctx, eventID, userEmail)
	if registration := args.Get(0); registration != nil {
		return registration.(*entities.EventRegistration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) FindManyByEventID(ctx context.Context, eventID string) ([]*entities.EventRegistration, error) {
	args := m.Called(ctx, eventID)
	if registrations := args.Get(0); registrations != nil {
		return registrations.([]*entities.EventRegistration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) FindManyByEmail(ctx context.Context, userEmail string) ([]*entities.EventRegistration, error) {
	args := m.Called(ctx, userEmail)
	if registrations := args.Get(0); registrations != nil {
		return registrations.([]*entities.EventRegistration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) CountRegisteredByEmail(ctx context.Context, userEmail string) (int64, error) {
	args := m.Called(ctx, userEmail)
	return args.Get(0).(int64), args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) InsertOne(ctx context.Context, payment entities.Payment) (primitive.ObjectID, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockPaymentRepo) ExistsByPaymentID(ctx context.Context, paymentID string) (bool, error) {
	args := m.Called(ctx, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPaymentRepo) FindAll(ctx context.Context) ([]*entities.Payment, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]*entities.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) FindManyByEmail(ctx context.Context, memberEmail string) ([]*entities.Payment, error) {
	args := m.Called(ctx, memberEmail)
	if list := args.Get(0); list != nil {
		return list.([]*entities.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) SumAll(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockPaymentRepo) SumByClubIDs(ctx context.Context, clubIDs []string) (float64, error) {
	args := m.Called(ctx, clubIDs)
	return args.Get(0).(float64), args.Error(1)
}

type mockAnalyticsRepo struct{ mock.Mock }

func (m *mockAnalyticsRepo) MonthlyCounts(ctx context.Context, collection, dateField string, match bson.M) (map[string]float64, error) {
	args := m.Called(ctx, collection, dateField, match)
	if buckets := args.Get(0); buckets != nil {
		return buckets.(map[string]float64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsRepo) MonthlySums(ctx context.Context, collection, dateField, sumField string, match bson.M) (map[string]float64, error) {
	args := m.Called(ctx, collection, dateField, sumField, match)
	if buckets := args.Get(0); buckets != nil {
		return buckets.(map[string]float64), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCheckout struct{ mock.Mock }

func (m *mockCheckout) CreateSession(ctx context.Context, params payments.CreateSessionParams) (*payments.Session, error) {
	args := m.Called(ctx, params)
	if session := args.Get(0); session != nil {
		return session.(*payments.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckout) RetrieveSession(ctx context.Context, id string) (*payments.Session, error) {
	args := m.Called(ctx, id)
	if session := args.Get(0); session != nil {
		return session.(*payments.Session), args.Error(1)
	}
	return nil, args.Error(1)
}
