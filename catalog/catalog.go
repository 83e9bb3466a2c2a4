// Package catalog holds the static seed events that ship with the site.
// User-created events live in the store; lookups merge both, with the
// seed catalog checked first.
package catalog

import "campushub/models"

var Events = []models.Event{
	{
		Slug:    "hack-the-night",
		Title:   "Hack the Night",
		Date:    "Nov 22, 2025",
		Tagline: "24-hour hackathon for all disciplines",
		Image:   "/students-hacking-at-night.jpg",
		Kind:    "upcoming",
		Tags:    []string{"Technology", "Competition", "Workshop"},
		Website: "https://hackthenight.example.com",
		Details: models.EventDetails{
			Description:          "Join teams to ideate, prototype, and demo solutions in a 24-hour sprint. Mentors and snacks included!",
			Eligibility:          "Open to all university students. Teams of 2-4 recommended.",
			Schedule:             "Sat 9:00 AM - Sun 9:00 AM",
			Location:             "Innovation Lab, Building A",
			Fee:                  "Free",
			RequiresRegistration: true,
			Gallery:              []string{"/hackathon-team.jpg", "/mentors-helping.jpg"},
		},
	},
	{
		Slug:    "film-fest",
		Title:   "Campus Film Fest",
		Date:    "Dec 5, 2025",
		Tagline: "Short films from student creators",
		Image:   "/film-festival-screen.jpg",
		Kind:    "upcoming",
		Tags:    []string{"Arts", "Entertainment", "Community"},
		Website: "https://filmfest.example.com",
		Details: models.EventDetails{
			Description: "An evening of student-made films, followed by a Q&A with the creators and judges' awards.",
			Eligibility: "Open to all. Submissions by current students only.",
			Schedule:    "Fri 6:00 PM - 9:00 PM",
			Location:    "Auditorium, Arts Center",
			Fee:         "Free for students, $5 for guests",
		},
	},
	{
		Slug:    "spring-fair-2025",
		Title:   "Spring Fair 2025",
		Date:    "Apr 7, 2025",
		Tagline: "Food, music, and campus showcases",
		Image:   "/spring-fair-music.jpg",
		Kind:    "past",
		Tags:    []string{"Social", "Music", "Community"},
		Details: models.EventDetails{
			Description: "A day-long celebration with club booths, performances, and local vendors across the quad.",
			Eligibility: "Open to all.",
			Schedule:    "Mon 10:00 AM - 6:00 PM",
			Location:    "Main Quad",
			Fee:         "Free",
		},
	},
	{
		Slug:    "ai-guest-lecture",
		Title:   "AI Guest Lecture",
		Date:    "Sep 12, 2025",
		Tagline: "Industry expert talk on AI ethics",
		Image:   "/lecture-hall.png",
		Kind:    "past",
		Tags:    []string{"Technology", "Workshop", "Academic"},
		Details: models.EventDetails{
			Description: "A thought-provoking talk on responsible AI with live Q&A and networking afterwards.",
			Eligibility: "Open to students and faculty.",
			Schedule:    "Thu 5:00 PM - 6:30 PM",
			Location:    "Science Building, Room 204",
			Fee:         "Free",
		},
	},
}

// BySlug returns the seed event with the given slug, if any.
func BySlug(slug string) (models.Event, bool) {
	for _, e := range Events {
		if e.Slug == slug {
			return e, true
		}
	}
	return models.Event{}, false
}
