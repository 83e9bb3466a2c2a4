package models

// EventDetails holds the long-form fields shown on an event page.
type EventDetails struct {
	Description          string   `json:"description" bson:"description"`
	Eligibility          string   `json:"eligibility" bson:"eligibility"`
	Schedule             string   `json:"schedule" bson:"schedule"`
	Location             string   `json:"location" bson:"location"`
	Fee                  string   `json:"fee,omitempty" bson:"fee,omitempty"`
	RequiresRegistration bool     `json:"requiresRegistration,omitempty" bson:"requiresRegistration,omitempty"`
	Gallery              []string `json:"gallery,omitempty" bson:"gallery,omitempty"`
}

// Event is identified by its slug across both the seed catalog and
// user-created events. Slug uniqueness is the caller's responsibility.
type Event struct {
	Slug        string       `json:"slug" bson:"slug"`
	Title       string       `json:"title" bson:"title"`
	Date        string       `json:"date" bson:"date"`
	Tagline     string       `json:"tagline" bson:"tagline"`
	Image       string       `json:"image" bson:"image"`
	Kind        string       `json:"kind" bson:"kind"` // "upcoming" or "past"
	Tags        []string     `json:"tags" bson:"tags"`
	Website     string       `json:"website,omitempty" bson:"website,omitempty"`
	Details     EventDetails `json:"details" bson:"details"`
	CreatorID   string       `json:"creatorId,omitempty" bson:"creatorId,omitempty"`
	CreatorName string       `json:"creatorName,omitempty" bson:"creatorName,omitempty"`
}

// Proposal is a user-submitted event idea. Proposals are reviewed by
// organizers and are never promoted to events automatically.
type Proposal struct {
	Slug        string   `json:"slug" bson:"slug"`
	Title       string   `json:"title" bson:"title"`
	Location    string   `json:"location" bson:"location"`
	Date        string   `json:"date" bson:"date"`
	Website     string   `json:"website,omitempty" bson:"website,omitempty"`
	Description string   `json:"description" bson:"description"`
	Tags        []string `json:"tags" bson:"tags"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty"`
	ProposerID  string   `json:"proposerId,omitempty" bson:"proposerId,omitempty"`
	TS          int64    `json:"ts" bson:"ts"`
}
