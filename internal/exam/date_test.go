package exam

import (
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "morning sitting",
			input: "15 jan 2024 am",
			want:  time.Date(2024, time.January, 15, 8, 30, 0, 0, time.Local),
		},
		{
			name:  "afternoon sitting",
			input: "3 dec 2024 pm",
			want:  time.Date(2024, time.December, 3, 14, 0, 0, 0, time.Local),
		},
		{
			name:  "any non-am token means afternoon",
			input: "3 dec 2024 em",
			want:  time.Date(2024, time.December, 3, 14, 0, 0, 0, time.Local),
		},
		{
			name:  "uppercase month",
			input: "28 OKT 2025 am",
			want:  time.Date(2025, time.October, 28, 8, 30, 0, 0, time.Local),
		},
		{
			name:  "maj is May",
			input: "31 maj 2025 pm",
			want:  time.Date(2025, time.May, 31, 14, 0, 0, 0, time.Local),
		},
		{
			name:    "too few components",
			input:   "15 jan 2024",
			wantErr: true,
		},
		{
			name:    "unknown month",
			input:   "15 may 2024 am",
			wantErr: true,
		},
		{
			name:    "non-numeric day",
			input:   "fifteenth jan 2024 am",
			wantErr: true,
		},
		{
			name:    "non-numeric year",
			input:   "15 jan twenty am",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate_AllMonths(t *testing.T) {
	months := []string{"jan", "feb", "mar", "apr", "maj", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}

	for i, mon := range months {
		want := time.Month(i + 1)

		t.Run(mon, func(t *testing.T) {
			got, err := ParseDate("1 " + mon + " 2025 am")
			if err != nil {
				t.Fatalf("ParseDate error = %v", err)
			}
			if got.Month() != want {
				t.Errorf("month = %v, want %v", got.Month(), want)
			}

			// Case-insensitive match.
			got, err = ParseDate("1 " + strings.ToUpper(mon) + " 2025 am")
			if err != nil {
				t.Fatalf("ParseDate uppercase error = %v", err)
			}
			if got.Month() != want {
				t.Errorf("uppercase month = %v, want %v", got.Month(), want)
			}
		})
	}
}

func TestParseDate_ErrorNamesInput(t *testing.T) {
	_, err := ParseDate("15 may 2024 am")
	if err == nil {
		t.Fatal("expected error for unknown month")
	}
	if !strings.Contains(err.Error(), "may") {
		t.Errorf("error %q should name the offending month", err)
	}
}
