package models

import "time"

// Registration is one sign-up for an event. TS is epoch millis; CreatedAt
// is carried for older stored entries that predate the ts field.
type Registration struct {
	Slug       string `json:"slug" bson:"slug"`
	EventTitle string `json:"eventTitle" bson:"eventTitle"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Message    string `json:"message,omitempty" bson:"message,omitempty"`
	TS         int64  `json:"ts" bson:"ts"`
	CreatedAt  string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Volunteer sign-ups share the registration shape.
type Volunteer = Registration

// Normalize fills whichever of TS/CreatedAt is missing from the other,
// so entries from older storage layouts come back type-consistent.
func (r *Registration) Normalize() {
	if r.TS == 0 && r.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			r.TS = t.UnixMilli()
		}
	}
	if r.CreatedAt == "" && r.TS != 0 {
		r.CreatedAt = time.UnixMilli(r.TS).UTC().Format(time.RFC3339)
	}
}

// Suggestion is feedback left on an event page. The repository assigns
// ID and CreatedAt when the caller did not.
type Suggestion struct {
	ID          string `json:"id" bson:"id"`
	Slug        string `json:"slug" bson:"slug"`
	Message     string `json:"message" bson:"message"`
	AuthorEmail string `json:"authorEmail,omitempty" bson:"authorEmail,omitempty"`
	AuthorName  string `json:"authorName,omitempty" bson:"authorName,omitempty"`
	CreatedAt   string `json:"createdAt" bson:"createdAt"`
}

// Organizer is one entry in an event's organizer set, keyed by email.
type Organizer struct {
	Slug    string `json:"slug" bson:"slug"`
	Email   string `json:"email" bson:"email"`
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	AddedAt int64  `json:"addedAt" bson:"addedAt"`
}

// InboxMessage is a site-wide contact message, not scoped to an event.
type InboxMessage struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Message   string `json:"message" bson:"message"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}
