package services

import (
	"context"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The repository interfaces below describe what the services consume; the
// concrete Mongo repositories satisfy them. Tests substitute mocks.

type UserRepository interface {
	FindOneByEmail(ctx context.Context, email string) (*entities.User, error)
	InsertOne(ctx context.Context, user entities.User) error
	UpdateLastLoggedIn(ctx context.Context, email, loggedInAt string) error
	UpdateRole(ctx context.Context, email, role string) error
	FindAllExcept(ctx context.Context, email string) ([]*entities.User, error)
	CountAll(ctx context.Context) (int64, error)
	CountExcept(ctx context.Context, email string) (int64, error)
}

type ClubRepository interface {
	InsertOne(ctx context.Context, club entities.Club) (primitive.ObjectID, error)
	FindOneByID(ctx context.Context, id string) (*entities.Club, error)
	FindAll(ctx context.Context) ([]*entities.Club, error)
	FindManyByStatus(ctx context.Context, status string) ([]*entities.Club, error)
	FindManyByManagerEmail(ctx context.Context, email string) ([]*entities.Club, error)
	FindManyByIDs(ctx context.Context, ids []string) ([]*entities.Club, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type EventRepository interface {
	InsertOne(ctx context.Context, event entities.Event) (primitive.ObjectID, error)
	FindOneByID(ctx context.Context, id string) (*entities.Event, error)
	FindAll(ctx context.Context) ([]*entities.Event, error)
	FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Event, error)
	FindManyByEventIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entities.Event, error)
	FindUpcoming(ctx context.Context, fromDate string) ([]*entities.Event, error)
	FindUpcomingByClubIDs(ctx context.Context, clubIDs []string, fromDate string) ([]*entities.Event, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteOneByID(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByClubID(ctx context.Context, clubID string) (int64, error)
	CountByClubIDs(ctx context.Context, clubIDs []string) (int64, error)
}

type MembershipRepository interface {
	InsertOne(ctx context.Context, membership entities.Membership) (primitive.ObjectID, error)
	FindOneByPaymentID(ctx context.Context, paymentID string) (*entities.Membership, error)
	FindOneByClubAndEmail(ctx context.Context, clubID, memberEmail string) (*entities.Membership, error)
	FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Membership, error)
	FindManyActiveByEmail(ctx context.Context, memberEmail string) ([]*entities.Membership, error)
	DeleteOneByID(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByClubID(ctx context.Context, clubID string) (int64, error)
	CountActiveByClubID(ctx context.Context, clubID string) (int64, error)
	CountActiveByClubIDs(ctx context.Context, clubIDs []string) (int64, error)
	CountActiveByEmail(ctx context.Context, memberEmail string) (int64, error)
}

type EventRegistrationRepository interface {
	InsertOne(ctx context.Context, registration entities.EventRegistration) (primitive.ObjectID, error)
	FindOneByEventAndEmail(ctx context.Context, eventID, userEmail string) (*entities.EventRegistration, error)
	FindManyByEventID(ctx context.Context, eventID string) ([]*entities.EventRegistration, error)
	FindManyByEmail(ctx context.Context, userEmail string) ([]*entities.EventRegistration, error)
	CountRegisteredByEmail(ctx context.Context, userEmail string) (int64, error)
}

type PaymentRepository interface {
	InsertOne(ctx context.Context, payment entities.Payment) (primitive.ObjectID, error)
	ExistsByPaymentID(ctx context.Context, paymentID string) (bool, error)
	FindAll(ctx context.Context) ([]*entities.Payment, error)
	FindManyByEmail(ctx context.Context, memberEmail string) ([]*entities.Payment, error)
	SumAll(ctx context.Context) (float64, error)
	SumByClubIDs(ctx context.Context, clubIDs []string) (float64, error)
}

type AnalyticsRepository interface {
	MonthlyCounts(ctx context.Context, collection, dateField string, match bson.M) (map[string]float64, error)
	MonthlySums(ctx context.Context, collection, dateField, sumField string, match bson.M) (map[string]float64, error)
}
