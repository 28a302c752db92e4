package internal

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintEvents(t *testing.T) {
	lines := []EventLine{{
		ID:          42,
		Title:       "Spinning",
		Instructor:  "Mette",
		Start:       "09:00",
		End:         "09:45",
		SignedUp:    12,
		Waitlist:    2,
		Description: "Christmas ride",
	}}

	var out bytes.Buffer
	PrintEvents(&out, lines)
	output := out.String()

	for _, want := range []string{
		"[42]",
		"'Spinning'",
		"Instructor: Mette",
		"09:00-09:45",
		"12 signed up.",
		"2 on waitlist.",
		"'Christmas ride'",
		"1 events available.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrintEvents() missing %q:\n%s", want, output)
		}
	}
}

func TestPrintEvents_Empty(t *testing.T) {
	var out bytes.Buffer
	PrintEvents(&out, nil)
	if got := strings.TrimSpace(out.String()); got != "0 events available." {
		t.Errorf("PrintEvents(nil) = %q", got)
	}
}

func TestChoices(t *testing.T) {
	gyms := GymChoices([]Gym{{ID: 7, Name: "Arca Nordvest"}})
	if len(gyms) != 1 || gyms[0].Label != "Arca Nordvest" || gyms[0].Value != "7" {
		t.Errorf("GymChoices() = %+v", gyms)
	}

	events := EventChoices([]EventLine{{ID: 42, Title: "Spinning", Start: "09:00", End: "09:45"}})
	if len(events) != 1 || events[0].Label != "[42] Spinning 09:00-09:45" || events[0].Value != "42" {
		t.Errorf("EventChoices() = %+v", events)
	}

	if got := GymChoices(nil); got == nil || len(got) != 0 {
		t.Errorf("GymChoices(nil) = %#v, want empty slice", got)
	}
}
