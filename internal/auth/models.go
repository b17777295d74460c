package auth

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ClassIntern    = "intern"
	ClassRecruiter = "recruiter"
)

type Intern struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	PasswordHash string             `bson:"password_hash"`
	Name         string             `bson:"name"`
	Department   string             `bson:"department"`
	UID          string             `bson:"uid"`
	Year         int                `bson:"year"`
	DOB          string             `bson:"dob,omitempty"`
	Address      string             `bson:"address,omitempty"`
	Contact      string             `bson:"contact,omitempty"`
}

type Recruiter struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	PasswordHash string             `bson:"password_hash"`
	Company      string             `bson:"company"`
}

// Identity is the authenticated principal, regardless of class.
type Identity struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Class   string `json:"class"`
}

type RegisterRequest struct {
	Role       string `json:"role"`
	UserID     string `json:"user_id"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Department string `json:"department"`
	UID        string `json:"uid"`
	Year       int    `json:"year"`
	Company    string `json:"company"`
}

type Credential struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}
