package internal

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/iksnae/arca-booking/testutil"
)

func summaryTransport() *MemoryTransport {
	return NewMemoryTransport().
		Respond(http.MethodPost, PathLogin, http.StatusOK, testutil.LoginBody).
		Respond(http.MethodGet, PathAnnouncement, http.StatusOK, testutil.AnnouncementBody).
		Respond(http.MethodGet, PathUser, http.StatusOK, testutil.UserBody).
		Respond(http.MethodGet, PathPushNotifications, http.StatusOK, testutil.PushNotificationsBody).
		Respond(http.MethodGet, PathFriendRequestsReceived, http.StatusOK, testutil.FriendRequestsBody).
		Respond(http.MethodGet, PathFriendships, http.StatusOK, testutil.FriendshipsBody).
		Respond(http.MethodGet, PathParticipationBookings, http.StatusOK, testutil.BookingsBody).
		Respond(http.MethodGet, PathFeed, http.StatusOK, testutil.FeedBody).
		Respond(http.MethodGet, PathGyms, http.StatusOK, testutil.GymsBody)
}

func TestReporter_Run(t *testing.T) {
	transport := summaryTransport()
	client := NewClient(transport)
	client.Login(context.Background(), "a@b.com", "pw")

	var out bytes.Buffer
	if err := NewReporter(client, &out).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantPaths := []string{
		PathLogin,
		PathAnnouncement,
		PathUser,
		PathPushNotifications,
		PathFriendRequestsReceived,
		PathFriendships,
		PathParticipationBookings,
		PathFeed,
		PathGyms,
	}
	gotPaths := transport.Paths()
	if strings.Join(gotPaths, ",") != strings.Join(wantPaths, ",") {
		t.Errorf("fetch order = %v, want %v", gotPaths, wantPaths)
	}

	output := out.String()
	wantInOrder := []string{
		"Announcement:",
		"'Closed on the 24th'",
		"2 unread invitations.",
		"3 badges.",
		"2 new push notifications found.",
		"1 friend requests received.",
		"2 friendships found.",
		"4 bookings found.",
		"Recent feed - 2 items:",
		"Anna booked Spinning",
		"Bo booked Yoga",
		"2 gyms found:",
		"7: Arca Nordvest",
		"9: Arca Valby",
	}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(output[pos:], want)
		if idx < 0 {
			t.Fatalf("output missing %q after offset %d:\n%s", want, pos, output)
		}
		pos += idx + len(want)
	}
}

func TestReporter_FailureStopsThePass(t *testing.T) {
	transport := summaryTransport().
		Respond(http.MethodGet, PathPushNotifications, http.StatusOK, `{"unexpected":true}`)
	client := NewClient(transport)
	client.Login(context.Background(), "a@b.com", "pw")

	var out bytes.Buffer
	err := NewReporter(client, &out).Run(context.Background())

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Endpoint != PathPushNotifications {
		t.Fatalf("Run() error = %v, want FetchError for %s", err, PathPushNotifications)
	}
	for _, p := range transport.Paths() {
		if p == PathFriendRequestsReceived || p == PathGyms {
			t.Errorf("fetched %s after a failed section", p)
		}
	}
	if strings.Contains(out.String(), "friend requests") {
		t.Error("later sections should not be printed after a failure")
	}
}

func TestPrintGyms(t *testing.T) {
	var out bytes.Buffer
	PrintGyms(&out, nil)
	if !strings.Contains(out.String(), "0 gyms found:") {
		t.Errorf("PrintGyms(nil) = %q", out.String())
	}
}
