package internal

import "strconv"

// Choice is one option of a selection prompt
type Choice struct {
	Label string
	Value string
}

// Prompter asks the user for input. An empty string means the user gave
// no answer or declined the selection; errors are reserved for I/O failures.
type Prompter interface {
	Input(label string) (string, error)
	Password(label string) (string, error)
	Select(label string, choices []Choice) (string, error)
}

// GymChoices builds the selection for a gym catalog, values are gym IDs
func GymChoices(gyms []Gym) []Choice {
	choices := make([]Choice, 0, len(gyms))
	for _, g := range gyms {
		choices = append(choices, Choice{Label: g.Name, Value: strconv.Itoa(g.ID)})
	}
	return choices
}

// EventChoices builds the selection for a bookable event listing, values are event IDs
func EventChoices(lines []EventLine) []Choice {
	choices := make([]Choice, 0, len(lines))
	for _, l := range lines {
		choices = append(choices, Choice{
			Label: "[" + strconv.Itoa(l.ID) + "] " + l.Title + " " + l.Start + "-" + l.End,
			Value: strconv.Itoa(l.ID),
		})
	}
	return choices
}
