package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	summaryCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	summaryQuoteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Italic(true)

	summaryIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// SummarySource is the subset of the API the summary reads
type SummarySource interface {
	GetAnnouncement(ctx context.Context) (*Announcement, error)
	GetUser(ctx context.Context) (*UserInfo, error)
	GetPushNotifications(ctx context.Context) ([]PushNotification, error)
	GetFriendRequestsReceived(ctx context.Context) ([]json.RawMessage, error)
	GetFriendships(ctx context.Context) ([]json.RawMessage, error)
	GetParticipationBookings(ctx context.Context) ([]json.RawMessage, error)
	GetFeed(ctx context.Context) ([]Activity, error)
	GetGyms(ctx context.Context) ([]Gym, error)
}

// Reporter prints the account overview shown after login
type Reporter struct {
	source SummarySource
	out    io.Writer
}

// NewReporter creates a reporter writing to out
func NewReporter(source SummarySource, out io.Writer) *Reporter {
	return &Reporter{source: source, out: out}
}

// Run fetches and prints every section in display order. The first
// failing fetch stops the pass; nothing is substituted for it.
func (r *Reporter) Run(ctx context.Context) error {
	sections := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"announcement", r.ShowAnnouncement},
		{"user", r.ShowUserInformation},
		{"notifications", r.ShowNotifications},
		{"friend requests", r.ShowFriendRequests},
		{"friendships", r.ShowFriendships},
		{"bookings", r.ShowBookings},
		{"feed", r.ShowFeedTitles},
		{"gyms", r.ShowGyms},
	}

	for _, section := range sections {
		LogDebug("summary: %s", section.name)
		if err := section.fn(ctx); err != nil {
			return fmt.Errorf("summary %s: %w", section.name, err)
		}
	}
	return nil
}

// ShowAnnouncement prints the announcement body
func (r *Reporter) ShowAnnouncement(ctx context.Context) error {
	announcement, err := r.source.GetAnnouncement(ctx)
	if err != nil {
		return err
	}
	r.println(summaryHeaderStyle.Render("Announcement:"))
	r.println(summaryQuoteStyle.Render(fmt.Sprintf("'%s'", announcement.Body)))
	r.println("")
	return nil
}

// ShowUserInformation prints unread invitations and badge count
func (r *Reporter) ShowUserInformation(ctx context.Context) error {
	user, err := r.source.GetUser(ctx)
	if err != nil {
		return err
	}
	r.printCount(user.UnreadInvitations, "unread invitations.")
	r.printCount(len(user.Badges), "badges.")
	return nil
}

// ShowNotifications prints the number of unread push notifications
func (r *Reporter) ShowNotifications(ctx context.Context) error {
	notifications, err := r.source.GetPushNotifications(ctx)
	if err != nil {
		return err
	}
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	r.printCount(unread, "new push notifications found.")
	return nil
}

// ShowFriendRequests prints the number of received friend requests
func (r *Reporter) ShowFriendRequests(ctx context.Context) error {
	requests, err := r.source.GetFriendRequestsReceived(ctx)
	if err != nil {
		return err
	}
	r.printCount(len(requests), "friend requests received.")
	return nil
}

// ShowFriendships prints the number of friendships
func (r *Reporter) ShowFriendships(ctx context.Context) error {
	friends, err := r.source.GetFriendships(ctx)
	if err != nil {
		return err
	}
	r.printCount(len(friends), "friendships found.")
	return nil
}

// ShowBookings prints the number of participation bookings
func (r *Reporter) ShowBookings(ctx context.Context) error {
	bookings, err := r.source.GetParticipationBookings(ctx)
	if err != nil {
		return err
	}
	r.printCount(len(bookings), "bookings found.")
	r.println("")
	return nil
}

// ShowFeedTitles prints the title of every feed entry
func (r *Reporter) ShowFeedTitles(ctx context.Context) error {
	activities, err := r.source.GetFeed(ctx)
	if err != nil {
		return err
	}
	r.println(summaryHeaderStyle.Render(fmt.Sprintf("Recent feed - %d items:", len(activities))))
	for _, a := range activities {
		r.println(a.Title)
	}
	r.println("")
	return nil
}

// ShowGyms prints the gym catalog as id: name
func (r *Reporter) ShowGyms(ctx context.Context) error {
	gyms, err := r.source.GetGyms(ctx)
	if err != nil {
		return err
	}
	PrintGyms(r.out, gyms)
	r.println("")
	return nil
}

// PrintGyms writes the gym catalog
func PrintGyms(w io.Writer, gyms []Gym) {
	_, _ = fmt.Fprintln(w, summaryHeaderStyle.Render(fmt.Sprintf("%d gyms found:", len(gyms))))
	for _, g := range gyms {
		_, _ = fmt.Fprintf(w, "%s: %s\n", summaryIDStyle.Render(fmt.Sprintf("%d", g.ID)), g.Name)
	}
}

func (r *Reporter) printCount(n int, label string) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", summaryCountStyle.Render(fmt.Sprintf("%d", n)), label)
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}
