package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event.ClubName is copied from the club at creation time and is not kept in
// sync with later club renames.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClubID      string             `bson:"clubId,omitempty" json:"clubId,omitempty"`
	ClubName    string             `bson:"clubName,omitempty" json:"clubName,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	BannerImage string             `bson:"bannerImage,omitempty" json:"bannerImage,omitempty"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt   string             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   string             `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
}
