package organizers

import (
	"strings"

	"campushub/models"
)

// Access to organizer-only data is decided here, in the delivery layer.
// The repository itself never filters by caller: any handler that skips
// this check will get data back, so every organizer-only endpoint must
// call it.

// CanViewAnalytics reports whether a session may see an event's
// analytics, registrations, volunteers, or suggestions: admins always,
// otherwise only emails on that event's organizer list.
func CanViewAnalytics(p models.Profile, organizerEmails []string) bool {
	if strings.EqualFold(p.Role, "admin") {
		return true
	}
	for _, email := range organizerEmails {
		if strings.EqualFold(email, p.Email) {
			return true
		}
	}
	return false
}

// CanManage reports whether a session may change an event's organizer
// set. Same rule as viewing; an event with no organizers yet can be
// claimed by nobody but an admin.
func CanManage(p models.Profile, organizerEmails []string) bool {
	return CanViewAnalytics(p, organizerEmails)
}
