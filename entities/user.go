package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleMember      = "member"
	RoleClubManager = "clubManager"
	RoleAdmin       = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL     string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    string             `bson:"created_at" json:"created_at"`
	LastLoggedIn string             `bson:"last_loggedIn" json:"last_loggedIn"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsClubManager() bool {
	return u.Role == RoleClubManager
}
