package internal

// DefaultYear is prefixed to MM-DD dates.
// TODO: derive from the current date once the service's behaviour across
// the year boundary has been checked; a fixed year goes stale every January.
const DefaultYear = "2024"

// NormalizeDate expands an MM-DD input to YYYY-MM-DD using year. Any other
// non-empty input is returned unchanged; the service validates it. Empty
// input is a ValidationError.
func NormalizeDate(input, year string) (string, error) {
	if input == "" {
		return "", &ValidationError{Field: "date", Reason: "empty"}
	}
	if year == "" {
		year = DefaultYear
	}
	if len(input) == 5 {
		return year + "-" + input, nil
	}
	return input, nil
}
