package profile

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile is the intern document as the profile view sees it: an explicit,
// stable field list instead of whatever keys the store happens to return.
// The password hash stays out of this projection.
type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Name       string             `bson:"name" json:"name"`
	Department string             `bson:"department" json:"department"`
	UID        string             `bson:"uid" json:"uid"`
	Year       int                `bson:"year" json:"year"`
	DOB        string             `bson:"dob,omitempty" json:"dob"`
	Address    string             `bson:"address,omitempty" json:"address"`
	Contact    string             `bson:"contact,omitempty" json:"contact"`
}

// ProfileUpdate is the editable subset. Everything else is read-only display.
type ProfileUpdate struct {
	DOB     string `json:"dob"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}
