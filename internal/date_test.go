package internal

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		year    string
		want    string
		wantErr bool
	}{
		{name: "month-day", input: "12-25", want: "2024-12-25"},
		{name: "full date", input: "2025-01-03", want: "2025-01-03"},
		{name: "other length passes through", input: "tomorrow", want: "tomorrow"},
		{name: "five chars not a date still prefixed", input: "abcde", want: "2024-abcde"},
		{name: "configured year", input: "01-02", year: "2025", want: "2025-01-02"},
		{name: "whitespace is not trimmed", input: " 12-25", want: " 12-25"},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input, tt.year)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
