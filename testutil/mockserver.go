package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// RecordedRequest is a request the fake backend received
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	ContentType   string
	RequestID     string
	Body          string
	// Param is the {id} route parameter of the booking endpoint
	Param string
}

// ArcaServer is an in-process fake of the Arca v2 API
type ArcaServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	bodies   map[string]string
	statuses map[string]int
}

// NewArcaServer starts a fake backend serving the canned fixtures.
// It is closed when the test ends.
func NewArcaServer(t *testing.T) *ArcaServer {
	t.Helper()
	s := &ArcaServer{
		bodies: map[string]string{
			"/login":                    LoginBody,
			"/announcement":             AnnouncementBody,
			"/user":                     UserBody,
			"/push_notifications":       PushNotificationsBody,
			"/friend_requests/received": FriendRequestsBody,
			"/friendships":              FriendshipsBody,
			"/participations/bookings":  BookingsBody,
			"/activities/bookings":      FeedBody,
			"/gyms":                     GymsBody,
			"/settings":                 SettingsBody,
			"/pay_debt":                 PayDebtBody,
			"/authorize_card":           AuthorizeCardBody,
			"/events":                   EventsBody,
			"/events/book":              BookedBody,
		},
		statuses: map[string]int{},
	}

	r := chi.NewRouter()
	r.Post("/login", s.handle("/login", false))
	r.Group(func(r chi.Router) {
		r.Use(s.requireToken)
		for _, path := range []string{
			"/announcement", "/user", "/push_notifications", "/friend_requests/received",
			"/friendships", "/participations/bookings", "/activities/bookings", "/gyms",
			"/settings", "/pay_debt", "/authorize_card", "/events",
		} {
			r.Get(path, s.handle(path, false))
		}
		r.Post("/events/{id}/book", s.handle("/events/book", true))
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SetBody replaces the body served for a route key (the path, or "/events/book")
func (s *ArcaServer) SetBody(key, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[key] = body
}

// SetStatus replaces the status served for a route key
func (s *ArcaServer) SetStatus(key string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[key] = status
}

// Requests returns a copy of every request received so far
func (s *ArcaServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Paths returns the paths of every request received so far, in order
func (s *ArcaServer) Paths() []string {
	var paths []string
	for _, r := range s.Requests() {
		paths = append(paths, r.Path)
	}
	return paths
}

func (s *ArcaServer) handle(key string, withParam bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec := RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          string(body),
		}
		if withParam {
			rec.Param = chi.URLParam(r, "id")
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		respBody := s.bodies[key]
		status, ok := s.statuses[key]
		s.mu.Unlock()

		if !ok {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}
}

func (s *ArcaServer) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != TestToken {
			s.mu.Lock()
			s.requests = append(s.requests, RecordedRequest{Method: r.Method, Path: r.URL.Path})
			s.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"unauthorized"}`)
			return
		}
		next.ServeHTTP(w, r)
	})
}
