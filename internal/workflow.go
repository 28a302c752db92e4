package internal

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// State is a step of the booking workflow
type State int

const (
	StateCredentialInput State = iota
	StateAuthenticate
	StateSummaryDisplay
	StateGymSelection
	StateDateInput
	StateEventListing
	StateEventSelection
	StateBookingSubmission
	StateBooked
	StateBookingFailed
	StateAborted
)

var stateNames = map[State]string{
	StateCredentialInput:   "credential input",
	StateAuthenticate:      "authenticate",
	StateSummaryDisplay:    "summary display",
	StateGymSelection:      "gym selection",
	StateDateInput:         "date input",
	StateEventListing:      "event listing",
	StateEventSelection:    "event selection",
	StateBookingSubmission: "booking submission",
	StateBooked:            "booked",
	StateBookingFailed:     "booking failed",
	StateAborted:           "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether the workflow stops in this state
func (s State) Terminal() bool {
	return s == StateBooked || s == StateBookingFailed || s == StateAborted
}

// BookingAPI is what the workflow needs from the Arca client
type BookingAPI interface {
	SummarySource
	Login(ctx context.Context, username, password string) *Session
	GetEvents(ctx context.Context, date string, gymID int) ([]Event, error)
	BookEvent(ctx context.Context, eventID int) BookingResult
}

// WorkflowOptions tune the booking workflow
type WorkflowOptions struct {
	// Username and Password skip their prompts when set
	Username string
	Password string
	// Year is prefixed to MM-DD dates; DefaultYear when empty
	Year        string
	SkipSummary bool
	Clock       Clock
}

// Outcome describes how a workflow run ended
type Outcome struct {
	State State
	// FailedAt is the state whose gate stopped the run, for StateAborted
	FailedAt State
	Reason   string
	// Err is the typed cause: ValidationError, AuthenticationError or BookingError
	Err     error
	Session *Session
	GymID   int
	Date    string
	EventID int
	Booking map[string]interface{}
}

// Workflow walks a user from login to a booking. States run strictly in
// order; a failed gate ends the run and nothing is retried.
type Workflow struct {
	api      BookingAPI
	prompter Prompter
	out      io.Writer
	opts     WorkflowOptions

	state    State
	outcome  Outcome
	username string
	password string
	lines    []EventLine
}

// NewWorkflow creates a workflow writing its messages to out
func NewWorkflow(api BookingAPI, prompter Prompter, out io.Writer, opts WorkflowOptions) *Workflow {
	if opts.Clock == nil {
		opts.Clock = LocalClock{}
	}
	if opts.Year == "" {
		opts.Year = DefaultYear
	}
	return &Workflow{
		api:      api,
		prompter: prompter,
		out:      out,
		opts:     opts,
		state:    StateCredentialInput,
	}
}

// State returns the current state
func (w *Workflow) State() State {
	return w.state
}

// Run executes the workflow until a terminal state. The returned error is
// non-nil only for fetch and prompt I/O failures; gate failures and failed
// bookings are reported in the Outcome.
func (w *Workflow) Run(ctx context.Context) (*Outcome, error) {
	for !w.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		LogDebug("workflow: %s", w.state)
		next, err := w.step(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", w.state, err)
		}
		w.state = next
	}
	w.outcome.State = w.state
	return &w.outcome, nil
}

func (w *Workflow) step(ctx context.Context) (State, error) {
	switch w.state {
	case StateCredentialInput:
		return w.credentialInput()
	case StateAuthenticate:
		return w.authenticate(ctx), nil
	case StateSummaryDisplay:
		return w.summaryDisplay(ctx)
	case StateGymSelection:
		return w.gymSelection(ctx)
	case StateDateInput:
		return w.dateInput()
	case StateEventListing:
		return w.eventListing(ctx)
	case StateEventSelection:
		return w.eventSelection()
	case StateBookingSubmission:
		return w.bookingSubmission(ctx), nil
	default:
		return w.state, fmt.Errorf("no transition from %s", w.state)
	}
}

func (w *Workflow) credentialInput() (State, error) {
	username := w.opts.Username
	if username == "" {
		var err error
		if username, err = w.prompter.Input("Enter your email: "); err != nil {
			return w.state, err
		}
	}
	if username == "" {
		return w.abort("Invalid email.", &ValidationError{Field: "username", Reason: "empty"}), nil
	}

	password := w.opts.Password
	if password == "" {
		var err error
		if password, err = w.prompter.Password("Enter your password: "); err != nil {
			return w.state, err
		}
	}
	if password == "" {
		return w.abort("Invalid password.", &ValidationError{Field: "password", Reason: "empty"}), nil
	}

	w.username, w.password = username, password
	return StateAuthenticate, nil
}

func (w *Workflow) authenticate(ctx context.Context) State {
	session := w.api.Login(ctx, w.username, w.password)
	w.password = ""
	if !session.Authenticated() {
		return w.abort("Login failed.", &AuthenticationError{Username: w.username})
	}

	w.outcome.Session = session
	w.printf("Logged in as user: '%s'.\n", session.UserID)
	if session.PasswordUpdateRequired {
		w.printf("Your password must be updated before long.\n")
	}
	w.printf("\n")
	return StateSummaryDisplay
}

func (w *Workflow) summaryDisplay(ctx context.Context) (State, error) {
	if w.opts.SkipSummary {
		return StateGymSelection, nil
	}
	if err := NewReporter(w.api, w.out).Run(ctx); err != nil {
		return w.state, err
	}
	return StateGymSelection, nil
}

func (w *Workflow) gymSelection(ctx context.Context) (State, error) {
	gyms, err := w.api.GetGyms(ctx)
	if err != nil {
		return w.state, err
	}

	selected, err := w.prompter.Select("Which gym would you like to see events for? (ID): ", GymChoices(gyms))
	if err != nil {
		return w.state, err
	}
	if selected == "" {
		return w.abort("No gym selected.", &ValidationError{Field: "gym", Reason: "no selection"}), nil
	}
	gymID, ok := parseID(selected)
	if !ok {
		return w.abort("Invalid gym ID.", &ValidationError{Field: "gym", Reason: fmt.Sprintf("%q is not an ID", selected)}), nil
	}

	w.outcome.GymID = gymID
	w.printf("\n")
	return StateDateInput, nil
}

func (w *Workflow) dateInput() (State, error) {
	input, err := w.prompter.Input("Which date would you like to see events? (YYYY-MM-DD) or (MM-DD): ")
	if err != nil {
		return w.state, err
	}
	date, err := NormalizeDate(input, w.opts.Year)
	if err != nil {
		return w.abort("Invalid date.", err), nil
	}

	w.outcome.Date = date
	w.printf("\n")
	return StateEventListing, nil
}

func (w *Workflow) eventListing(ctx context.Context) (State, error) {
	events, err := w.api.GetEvents(ctx, w.outcome.Date, w.outcome.GymID)
	if err != nil {
		return w.state, err
	}

	w.lines = FormatEvents(events, w.opts.Clock)
	PrintEvents(w.out, w.lines)
	w.printf("\n")
	return StateEventSelection, nil
}

func (w *Workflow) eventSelection() (State, error) {
	selected, err := w.prompter.Select("Which event would you like to book? (ID): ", EventChoices(w.lines))
	if err != nil {
		return w.state, err
	}
	if selected == "" {
		return w.abort("No event selected.", &ValidationError{Field: "event", Reason: "no selection"}), nil
	}
	eventID, ok := parseID(selected)
	if !ok {
		return w.abort("Invalid event ID.", &ValidationError{Field: "event", Reason: fmt.Sprintf("%q is not an ID", selected)}), nil
	}

	w.outcome.EventID = eventID
	w.printf("\n")
	return StateBookingSubmission, nil
}

func (w *Workflow) bookingSubmission(ctx context.Context) State {
	result := w.api.BookEvent(ctx, w.outcome.EventID)
	if !result.OK {
		w.outcome.Reason = fmt.Sprintf("Failed to book event %d.", result.EventID)
		w.outcome.Err = result.Err
		w.printf("%s\n", w.outcome.Reason)
		return StateBookingFailed
	}

	w.outcome.Booking = result.Booking
	w.outcome.Reason = fmt.Sprintf("Booked event %d.", result.EventID)
	w.printf("%s\n", w.outcome.Reason)
	return StateBooked
}

func (w *Workflow) abort(reason string, err error) State {
	w.outcome.FailedAt = w.state
	w.outcome.Reason = reason
	w.outcome.Err = err
	w.printf("%s\n", reason)
	return StateAborted
}

func (w *Workflow) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// parseID accepts only ASCII digits, like the IDs the service hands out
func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}
