package models

// User is a stored account. Role is "student", "organiser" or "admin"
// ("organizer" is accepted on input and normalized).
type User struct {
	Email        string `json:"email" bson:"email"`
	Name         string `json:"name" bson:"name"`
	University   string `json:"university" bson:"university"`
	Role         string `json:"role" bson:"role"`
	Course       string `json:"course,omitempty" bson:"course,omitempty"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	CreatedAt    int64  `json:"createdAt" bson:"createdAt"`
}

// Profile is the session view of a user, carried in the auth token and
// threaded through request context. It lives only as long as the session.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Role       string `json:"role"`
	Course     string `json:"course,omitempty"`
}
