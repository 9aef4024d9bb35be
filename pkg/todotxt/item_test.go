package todotxt

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Item
	}{
		{
			name: "plain task",
			line: "Call mom @family",
			want: Item{Text: "Call mom @family"},
		},
		{
			name: "prioritized task",
			line: "(A) Buy milk @shopping",
			want: Item{Priority: 'A', Text: "Buy milk @shopping"},
		},
		{
			name: "completed with completion date",
			line: "x 2024-01-01 Write report +work",
			want: Item{Done: true, CompletionDate: "2024-01-01", Text: "Write report +work"},
		},
		{
			name: "completed with both dates",
			line: "x 2024-01-02 2024-01-01 Write report",
			want: Item{Done: true, CompletionDate: "2024-01-02", CreationDate: "2024-01-01", Text: "Write report"},
		},
		{
			name: "completed keeping priority",
			line: "x 2024-01-02 (A) Buy milk",
			want: Item{Done: true, CompletionDate: "2024-01-02", Priority: 'A', Text: "Buy milk"},
		},
		{
			name: "priority with creation date",
			line: "(B) 2024-01-01 Plan trip",
			want: Item{Priority: 'B', CreationDate: "2024-01-01", Text: "Plan trip"},
		},
		{
			name: "lowercase priority is text",
			line: "(a) not a priority",
			want: Item{Text: "(a) not a priority"},
		},
		{
			name: "priority without trailing space is text",
			line: "(A)tight",
			want: Item{Text: "(A)tight"},
		},
		{
			name: "invalid date stays in text",
			line: "x 2024-13-40 nonsense",
			want: Item{Done: true, Text: "2024-13-40 nonsense"},
		},
		{
			name: "bare x without space is text",
			line: "xylophone lessons",
			want: Item{Text: "xylophone lessons"},
		},
		{
			name: "empty line",
			line: "",
			want: Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line, 0)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"Call mom @family",
		"(A) Buy milk @shopping",
		"(Z) 2023-11-05 File taxes +finance @home",
		"x 2024-01-01 Write report +work",
		"x 2024-01-02 2024-01-01 Write report",
		"x 2024-01-02 (C) Buy milk",
		"x no date at all",
		"  leading whitespace survives",
		"",
		"(a) malformed priority kept verbatim",
	}
	for _, line := range lines {
		if got := Parse(line, 0).String(); got != line {
			t.Errorf("round trip %q -> %q", line, got)
		}
	}
}

func TestTags(t *testing.T) {
	it := Parse("(A) Email @bob and @alice about +launch +launch-page", 0)
	if got, want := it.Contexts(), []string{"bob", "alice"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Contexts() = %v, want %v", got, want)
	}
	if got, want := it.Projects(), []string{"launch", "launch-page"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Projects() = %v, want %v", got, want)
	}

	if got := Parse("bare @ and + are not tags", 0).Contexts(); got != nil {
		t.Errorf("Contexts() = %v, want nil", got)
	}
}

func TestNextPriority(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0, 'A'},
		{'A', 'B'},
		{'Y', 'Z'},
		{'Z', 0},
	}
	for _, tt := range tests {
		if got := NextPriority(tt.in); got != tt.want {
			t.Errorf("NextPriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrevPriority(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0, 0},
		{'A', 'A'},
		{'B', 'A'},
		{'Z', 'Y'},
	}
	for _, tt := range tests {
		if got := PrevPriority(tt.in); got != tt.want {
			t.Errorf("PrevPriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
