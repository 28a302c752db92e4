package internal

import (
	"encoding/json"
	"time"
)

// Event represents a bookable class instance as returned by /events
type Event struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Instructor    string    `json:"instructor"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	Capacity      int       `json:"capacity"`
	FreeSpace     int       `json:"free_space"`
	CanBook       bool      `json:"can_book"`
	IsCanceled    bool      `json:"is_canceled"`
	Description   string    `json:"description"`
}

// SignedUp returns the number of participants, including the waitlist
func (e Event) SignedUp() int {
	return e.Capacity - e.FreeSpace
}

// Waitlist returns how many participants are beyond capacity.
// Negative free space is the only way the service reports oversubscription.
func (e Event) Waitlist() int {
	if e.FreeSpace < 0 {
		return -e.FreeSpace
	}
	return 0
}

// Gym represents a location events can be listed for
type Gym struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Announcement is the global message shown at login
type Announcement struct {
	Body string `json:"body"`
}

// UserInfo holds the account fields the summary reports on
type UserInfo struct {
	UnreadInvitations int               `json:"unread_invitations"`
	Badges            []json.RawMessage `json:"badges"`
}

// PushNotification represents a single notification; the service names the flag "read?"
type PushNotification struct {
	ID   int  `json:"id"`
	Read bool `json:"read?"`
}

// Activity represents a feed entry
type Activity struct {
	Title string `json:"title"`
}

// Record is an endpoint payload whose shape the client does not interpret
type Record map[string]json.RawMessage

// BookingResult is the outcome of a booking submission
type BookingResult struct {
	EventID int
	OK      bool
	// Booking is the echoed booking on success, when the body decodes
	Booking map[string]interface{}
	Err     error
}
