package internal

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/arca-booking/testutil"
)

const singleEventBody = `{"ss_events":[{
	"id": 42,
	"title": "Spinning",
	"instructor": "Mette",
	"start_date_time": "2024-12-25T10:00:00+01:00",
	"end_date_time": "2024-12-25T10:45:00+01:00",
	"capacity": 10,
	"free_space": -2,
	"can_book": true,
	"is_canceled": false,
	"description": "Christmas ride"
}]}`

func bookingTransport() *MemoryTransport {
	return summaryTransport().
		Respond(http.MethodGet, PathEvents, http.StatusOK, singleEventBody).
		Respond(http.MethodPost, "/events/42/book", http.StatusOK, testutil.BookedBody)
}

func runWorkflow(t *testing.T, transport *MemoryTransport, prompter Prompter, opts WorkflowOptions) (*Outcome, string, error) {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = FixedClock{Loc: time.UTC}
	}
	var out bytes.Buffer
	wf := NewWorkflow(NewClient(transport), prompter, &out, opts)
	outcome, err := wf.Run(context.Background())
	return outcome, out.String(), err
}

func TestWorkflow_BooksEvent(t *testing.T) {
	transport := bookingTransport()
	prompter := NewScriptedPrompter("a@b.com", "pw", "7", "12-25", "42")

	outcome, output, err := runWorkflow(t, transport, prompter, WorkflowOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if outcome.State != StateBooked {
		t.Fatalf("final state = %s, want booked (reason %q)", outcome.State, outcome.Reason)
	}
	if outcome.EventID != 42 || outcome.GymID != 7 || outcome.Date != "2024-12-25" {
		t.Errorf("outcome = %+v", outcome)
	}
	if outcome.Session == nil || outcome.Session.UserID != "U1" {
		t.Errorf("outcome session = %+v", outcome.Session)
	}
	if outcome.Booking == nil {
		t.Error("outcome should carry the echoed booking")
	}

	for _, want := range []string{
		"Logged in as user: 'U1'.",
		"1 events available.",
		"12 signed up.",
		"2 on waitlist.",
		"09:00-09:45",
		"Booked event 42.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	var eventsReq *Request
	for _, r := range transport.Requests() {
		if r.Path == PathEvents {
			eventsReq = r
		}
	}
	if eventsReq == nil {
		t.Fatal("events were never requested")
	}
	if eventsReq.Query.Get("date") != "2024-12-25" || eventsReq.Query.Get("gym_id") != "7" {
		t.Errorf("events query = %v", eventsReq.Query)
	}

	if len(prompter.Offered) != 2 {
		t.Fatalf("expected 2 selection prompts, got %d", len(prompter.Offered))
	}
	if gyms := prompter.Offered[0]; len(gyms) != 2 || gyms[0].Value != "7" {
		t.Errorf("gym choices = %+v", gyms)
	}
	if events := prompter.Offered[1]; len(events) != 1 || events[0].Value != "42" {
		t.Errorf("event choices = %+v", events)
	}
}

func TestWorkflow_BookingRejected(t *testing.T) {
	transport := bookingTransport().
		Respond(http.MethodPost, "/events/42/book", http.StatusUnprocessableEntity, `{"error":"full"}`)
	prompter := NewScriptedPrompter("a@b.com", "pw", "7", "12-25", "42")

	outcome, output, err := runWorkflow(t, transport, prompter, WorkflowOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if outcome.State != StateBookingFailed {
		t.Fatalf("final state = %s, want booking failed", outcome.State)
	}
	var bookingErr *BookingError
	if !errors.As(outcome.Err, &bookingErr) || bookingErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("outcome error = %v", outcome.Err)
	}
	if !strings.Contains(output, "Failed to book event 42.") {
		t.Errorf("output missing failure message:\n%s", output)
	}
	if strings.Contains(output, "Booked event") {
		t.Errorf("no success message may be printed on failure:\n%s", output)
	}
}

func TestWorkflow_LoginFailureStopsBeforeAnyOtherCall(t *testing.T) {
	transport := bookingTransport().
		Respond(http.MethodPost, PathLogin, http.StatusUnauthorized, testutil.LoginFailedBody)
	prompter := NewScriptedPrompter("a@b.com", "wrong")

	outcome, output, err := runWorkflow(t, transport, prompter, WorkflowOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if outcome.State != StateAborted || outcome.FailedAt != StateAuthenticate {
		t.Errorf("outcome = %s at %s, want aborted at authenticate", outcome.State, outcome.FailedAt)
	}
	var authErr *AuthenticationError
	if !errors.As(outcome.Err, &authErr) {
		t.Errorf("outcome error = %v, want AuthenticationError", outcome.Err)
	}
	if paths := transport.Paths(); len(paths) != 1 || paths[0] != PathLogin {
		t.Errorf("requests after failed login = %v, want only %s", paths, PathLogin)
	}
	if !strings.Contains(output, "Login failed.") {
		t.Errorf("output = %q", output)
	}
}

func TestWorkflow_EmptyGymSelectionNeverFetchesEvents(t *testing.T) {
	transport := bookingTransport()
	prompter := NewScriptedPrompter("a@b.com", "pw", "")

	outcome, _, err := runWorkflow(t, transport, prompter, WorkflowOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if outcome.State != StateAborted || outcome.FailedAt != StateGymSelection {
		t.Errorf("outcome = %s at %s, want aborted at gym selection", outcome.State, outcome.FailedAt)
	}
	for _, p := range transport.Paths() {
		if p == PathEvents {
			t.Error("events must not be fetched after an empty gym selection")
		}
	}
}

func TestWorkflow_Gates(t *testing.T) {
	tests := []struct {
		name       string
		answers    []string
		wantAt     State
		wantReason string
		wantField  string
	}{
		{name: "empty username", answers: []string{""}, wantAt: StateCredentialInput, wantReason: "Invalid email.", wantField: "username"},
		{name: "empty password", answers: []string{"a@b.com", ""}, wantAt: StateCredentialInput, wantReason: "Invalid password.", wantField: "password"},
		{name: "non-numeric gym", answers: []string{"a@b.com", "pw", "seven"}, wantAt: StateGymSelection, wantReason: "Invalid gym ID.", wantField: "gym"},
		{name: "negative gym", answers: []string{"a@b.com", "pw", "-7"}, wantAt: StateGymSelection, wantReason: "Invalid gym ID.", wantField: "gym"},
		{name: "empty date", answers: []string{"a@b.com", "pw", "7", ""}, wantAt: StateDateInput, wantReason: "Invalid date.", wantField: "date"},
		{name: "no event selected", answers: []string{"a@b.com", "pw", "7", "12-25", ""}, wantAt: StateEventSelection, wantReason: "No event selected.", wantField: "event"},
		{name: "non-numeric event", answers: []string{"a@b.com", "pw", "7", "12-25", "4x"}, wantAt: StateEventSelection, wantReason: "Invalid event ID.", wantField: "event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := bookingTransport()
			outcome, output, err := runWorkflow(t, transport, NewScriptedPrompter(tt.answers...), WorkflowOptions{})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if outcome.State != StateAborted || outcome.FailedAt != tt.wantAt {
				t.Errorf("outcome = %s at %s, want aborted at %s", outcome.State, outcome.FailedAt, tt.wantAt)
			}
			if outcome.Reason != tt.wantReason || !strings.Contains(output, tt.wantReason) {
				t.Errorf("reason = %q, want %q", outcome.Reason, tt.wantReason)
			}
			var validationErr *ValidationError
			if !errors.As(outcome.Err, &validationErr) || validationErr.Field != tt.wantField {
				t.Errorf("outcome error = %v, want ValidationError on %s", outcome.Err, tt.wantField)
			}
			for _, r := range transport.Requests() {
				if r.Method == http.MethodPost && r.Path != PathLogin {
					t.Errorf("aborted run must not book, saw %s %s", r.Method, r.Path)
				}
			}
		})
	}
}

func TestWorkflow_NoBookableEventsStillProceeds(t *testing.T) {
	transport := bookingTransport().
		Respond(http.MethodGet, PathEvents, http.StatusOK, testutil.EmptyEventsBody)
	prompter := NewScriptedPrompter("a@b.com", "pw", "7", "2024-12-25", "")

	outcome, output, err := runWorkflow(t, transport, prompter, WorkflowOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(output, "0 events available.") {
		t.Errorf("output = %q", output)
	}
	if outcome.FailedAt != StateEventSelection || outcome.Reason != "No event selected." {
		t.Errorf("outcome = %+v", outcome)
	}
	if outcome.Date != "2024-12-25" {
		t.Errorf("full date should pass through, got %q", outcome.Date)
	}
}

func TestWorkflow_SummaryFailureIsReturned(t *testing.T) {
	transport := bookingTransport().
		Respond(http.MethodGet, PathAnnouncement, http.StatusOK, "not json")
	prompter := NewScriptedPrompter("a@b.com", "pw", "7", "12-25", "42")

	outcome, _, err := runWorkflow(t, transport, prompter, WorkflowOptions{})
	if outcome != nil {
		t.Errorf("outcome = %+v, want nil on fetch failure", outcome)
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Endpoint != PathAnnouncement {
		t.Errorf("Run() error = %v, want FetchError for announcement", err)
	}
}

func TestWorkflow_PresetCredentialsAndSkipSummary(t *testing.T) {
	transport := bookingTransport()
	prompter := NewScriptedPrompter("9", "01-15", "42")

	outcome, _, err := runWorkflow(t, transport, prompter, WorkflowOptions{
		Username:    "a@b.com",
		Password:    "pw",
		SkipSummary: true,
		Year:        "2025",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if outcome.State != StateBooked || outcome.GymID != 9 || outcome.Date != "2025-01-15" {
		t.Errorf("outcome = %+v", outcome)
	}
	for _, p := range transport.Paths() {
		if p == PathAnnouncement {
			t.Error("summary should be skipped")
		}
	}
	for _, label := range prompter.Asked {
		if strings.Contains(label, "email") || strings.Contains(label, "password") {
			t.Errorf("preset credentials should not be prompted for, asked %q", label)
		}
	}
}

func TestWorkflow_PromptErrorIsReturned(t *testing.T) {
	prompter := NewScriptedPrompter("a@b.com")

	_, _, err := runWorkflow(t, bookingTransport(), prompter, WorkflowOptions{})
	if !errors.Is(err, ErrScriptExhausted) {
		t.Errorf("Run() error = %v, want ErrScriptExhausted", err)
	}
}

func TestWorkflow_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wf := NewWorkflow(NewClient(bookingTransport()), NewScriptedPrompter(), &bytes.Buffer{}, WorkflowOptions{})
	if _, err := wf.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if wf.State() != StateCredentialInput {
		t.Errorf("state = %s, want credential input", wf.State())
	}
}

func TestState_String(t *testing.T) {
	if StateBooked.String() != "booked" || StateBookingFailed.String() != "booking failed" {
		t.Error("unexpected state names")
	}
	if State(99).String() != "state(99)" {
		t.Errorf("unknown state = %q", State(99).String())
	}
	for s := StateCredentialInput; s <= StateBookingSubmission; s++ {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
