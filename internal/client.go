package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// UserAgent identifies this client to the Arca backend
const UserAgent = "arca-booking"

// Endpoint paths, relative to the API root
const (
	PathLogin                  = "/login"
	PathParticipationBookings  = "/participations/bookings"
	PathFriendRequestsReceived = "/friend_requests/received"
	PathAnnouncement           = "/announcement"
	PathPushNotifications      = "/push_notifications"
	PathFriendships            = "/friendships"
	PathGyms                   = "/gyms"
	PathFeed                   = "/activities/bookings"
	PathUser                   = "/user"
	PathSettings               = "/settings"
	PathPayDebt                = "/pay_debt"
	PathAuthorizeCard          = "/authorize_card"
	PathEvents                 = "/events"
)

// Client is an Arca API client. It is bound to at most one session,
// which is set by Login and only read afterwards.
type Client struct {
	transport Transport
	session   *Session
}

// NewClient creates a new Arca API client
func NewClient(transport Transport) *Client {
	return &Client{transport: transport}
}

// Session returns the session set by the last Login, or nil
func (c *Client) Session() *Session {
	return c.session
}

// Login exchanges credentials for a session. Any failure (transport,
// malformed body, missing token) yields a session with an empty AuthToken;
// callers must check Authenticated.
func (c *Client) Login(ctx context.Context, username, password string) *Session {
	session := &Session{}
	c.session = session

	resp, err := c.transport.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   PathLogin,
		Form: url.Values{
			"password": {password},
			"username": {username},
		},
		Header: c.headers(""),
	})
	if err != nil {
		LogDebug("login request failed: %v", err)
		return session
	}

	if err := json.Unmarshal(resp.Body, session); err != nil {
		LogDebug("login response (status %d) is not a session: %v", resp.StatusCode, err)
		*session = Session{}
		return session
	}
	if !session.Authenticated() {
		LogDebug("login response (status %d) carries no auth token", resp.StatusCode)
	}
	return session
}

// GetParticipationBookings returns the user's upcoming bookings
func (c *Client) GetParticipationBookings(ctx context.Context) ([]json.RawMessage, error) {
	var bookings []json.RawMessage
	err := c.getWrapped(ctx, PathParticipationBookings, nil, "ss_participations", &bookings)
	return bookings, err
}

// GetFriendRequestsReceived returns pending incoming friend requests
func (c *Client) GetFriendRequestsReceived(ctx context.Context) ([]json.RawMessage, error) {
	var requests []json.RawMessage
	err := c.getWrapped(ctx, PathFriendRequestsReceived, nil, "friend_requests", &requests)
	return requests, err
}

// GetAnnouncement returns the current announcement
func (c *Client) GetAnnouncement(ctx context.Context) (*Announcement, error) {
	var announcement Announcement
	if err := c.getWrapped(ctx, PathAnnouncement, nil, "announcement", &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetPushNotifications returns all push notifications, read or not
func (c *Client) GetPushNotifications(ctx context.Context) ([]PushNotification, error) {
	var notifications []PushNotification
	err := c.getWrapped(ctx, PathPushNotifications, nil, "push_notifications", &notifications)
	return notifications, err
}

// GetFriendships returns the users the account is friends with
func (c *Client) GetFriendships(ctx context.Context) ([]json.RawMessage, error) {
	var users []json.RawMessage
	err := c.getWrapped(ctx, PathFriendships, nil, "users", &users)
	return users, err
}

// GetGyms returns the gym catalog in service order
func (c *Client) GetGyms(ctx context.Context) ([]Gym, error) {
	var gyms []Gym
	err := c.getWrapped(ctx, PathGyms, nil, "gyms", &gyms)
	return gyms, err
}

// GetFeed returns the recent activity feed
func (c *Client) GetFeed(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	err := c.getWrapped(ctx, PathFeed, nil, "activities", &activities)
	return activities, err
}

// GetUser returns the account summary fields
func (c *Client) GetUser(ctx context.Context) (*UserInfo, error) {
	var user UserInfo
	if err := c.getWrapped(ctx, PathUser, nil, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSettings returns the account settings as an opaque record
func (c *Client) GetSettings(ctx context.Context) (Record, error) {
	return c.getRecord(ctx, PathSettings)
}

// GetPayDebt returns outstanding payment information as an opaque record
func (c *Client) GetPayDebt(ctx context.Context) (Record, error) {
	return c.getRecord(ctx, PathPayDebt)
}

// GetAuthorizeCard returns card authorization information as an opaque record
func (c *Client) GetAuthorizeCard(ctx context.Context) (Record, error) {
	return c.getRecord(ctx, PathAuthorizeCard)
}

// GetEvents returns the events of a gym on date (YYYY-MM-DD), in service order
func (c *Client) GetEvents(ctx context.Context, date string, gymID int) ([]Event, error) {
	query := url.Values{
		"date":   {date},
		"gym_id": {strconv.Itoa(gymID)},
	}
	var events []Event
	err := c.getWrapped(ctx, PathEvents, query, "ss_events", &events)
	return events, err
}

// BookEvent submits a booking. It is not idempotent: calling it twice may
// book twice. Failure is reported in the result, never as a returned error.
func (c *Client) BookEvent(ctx context.Context, eventID int) BookingResult {
	result := BookingResult{EventID: eventID}
	if !c.session.Authenticated() {
		result.Err = &BookingError{EventID: eventID, Err: ErrNotAuthenticated}
		return result
	}

	resp, err := c.transport.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("%s/%d/book", PathEvents, eventID),
		Header: c.headers(c.session.AuthToken),
	})
	if err != nil {
		result.Err = &BookingError{EventID: eventID, Err: err}
		return result
	}
	if !resp.OK() {
		result.Err = &BookingError{EventID: eventID, StatusCode: resp.StatusCode}
		return result
	}

	result.OK = true
	var booking map[string]interface{}
	if err := json.Unmarshal(resp.Body, &booking); err == nil {
		result.Booking = booking
	} else {
		LogDebug("booking %d accepted without a readable body: %v", eventID, err)
	}
	return result
}

// getWrapped fetches path and decodes the value under key into out.
// The service wraps every payload in a single-field object.
func (c *Client) getWrapped(ctx context.Context, path string, query url.Values, key string, out interface{}) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return &FetchError{Endpoint: path, Op: "decode", Err: err}
	}
	raw, ok := wrapper[key]
	if !ok {
		return &FetchError{Endpoint: path, Op: "decode", Err: fmt.Errorf("missing %q field", key)}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return &FetchError{Endpoint: path, Op: "decode", Err: fmt.Errorf("field %q is null", key)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &FetchError{Endpoint: path, Op: "decode", Err: fmt.Errorf("field %q: %w", key, err)}
	}
	return nil
}

func (c *Client) getRecord(ctx context.Context, path string) (Record, error) {
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &FetchError{Endpoint: path, Op: "decode", Err: err}
	}
	return record, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if !c.session.Authenticated() {
		return nil, &FetchError{Endpoint: path, Op: "request", Err: ErrNotAuthenticated}
	}

	resp, err := c.transport.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Header: c.headers(c.session.AuthToken),
	})
	if err != nil {
		return nil, &FetchError{Endpoint: path, Op: "request", Err: err}
	}
	LogDebug("GET %s -> %d (%d bytes)", path, resp.StatusCode, len(resp.Body))
	return resp.Body, nil
}

func (c *Client) headers(token string) http.Header {
	requestID := uuid.New().String()
	LogDebug("request id %s", requestID)

	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("User-Agent", UserAgent)
	h.Set("X-Request-ID", requestID)
	if token != "" {
		h.Set("Authorization", token)
	}
	return h
}
