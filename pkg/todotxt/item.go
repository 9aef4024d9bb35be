package todotxt

import (
	"strings"
	"time"
)

// DateLayout is the date format used by todo.txt completion and creation dates.
const DateLayout = "2006-01-02"

// Item represents a single task line from a todo.txt file.
type Item struct {
	Priority       byte // 'A'..'Z', 0 when unset
	Done           bool
	CompletionDate string // empty unless Done and the line carries one
	CreationDate   string
	Text           string
	SourceLine     int // 1-based line number at load time
}

// HasPriority reports whether the item carries a priority letter.
func (it Item) HasPriority() bool {
	return it.Priority != 0
}

// Parse decodes one todo.txt line. Malformed lines never fail: anything that
// doesn't match the prefix grammar is kept verbatim as free text, so a reload
// of a hand-edited file can't drop tasks.
func Parse(line string, lineNumber int) Item {
	it := Item{SourceLine: lineNumber}
	rest := line

	if strings.HasPrefix(rest, "x ") {
		it.Done = true
		rest = rest[2:]
		if d, ok := takeDate(rest); ok {
			it.CompletionDate = d
			rest = rest[len(d)+1:]
		}
	}

	if p, ok := takePriority(rest); ok {
		it.Priority = p
		rest = rest[4:]
	}

	if d, ok := takeDate(rest); ok {
		it.CreationDate = d
		rest = rest[len(d)+1:]
	}

	it.Text = rest
	return it
}

// String serializes the item back into todo.txt form. For any line Parse
// accepts, Parse then String reproduces the input byte for byte.
func (it Item) String() string {
	var sb strings.Builder
	if it.Done {
		sb.WriteString("x ")
		if it.CompletionDate != "" {
			sb.WriteString(it.CompletionDate)
			sb.WriteByte(' ')
		}
	}
	if it.Priority != 0 {
		sb.WriteByte('(')
		sb.WriteByte(it.Priority)
		sb.WriteString(") ")
	}
	if it.CreationDate != "" {
		sb.WriteString(it.CreationDate)
		sb.WriteByte(' ')
	}
	sb.WriteString(it.Text)
	return sb.String()
}

// Contexts extracts all @context tags from the item text.
func (it Item) Contexts() []string {
	return tags(it.Text, '@')
}

// Projects extracts all +project tags from the item text.
func (it Item) Projects() []string {
	return tags(it.Text, '+')
}

func tags(text string, prefix byte) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		if len(word) > 1 && word[0] == prefix {
			out = append(out, word[1:])
		}
	}
	return out
}

// takePriority matches a "(X) " prefix with X in A..Z.
func takePriority(s string) (byte, bool) {
	if len(s) < 4 || s[0] != '(' || s[2] != ')' || s[3] != ' ' {
		return 0, false
	}
	if s[1] < 'A' || s[1] > 'Z' {
		return 0, false
	}
	return s[1], true
}

// takeDate matches a "YYYY-MM-DD " prefix and validates it as a real date.
func takeDate(s string) (string, bool) {
	if len(s) < 11 || s[10] != ' ' {
		return "", false
	}
	candidate := s[:10]
	if _, err := time.Parse(DateLayout, candidate); err != nil {
		return "", false
	}
	return candidate, true
}

// NextPriority steps one letter down the alphabet: unset becomes A, Z wraps
// back to unset, everything else advances by one.
func NextPriority(p byte) byte {
	switch {
	case p == 0:
		return 'A'
	case p == 'Z':
		return 0
	default:
		return p + 1
	}
}

// PrevPriority steps one letter up the alphabet. A and unset stay put.
func PrevPriority(p byte) byte {
	if p == 0 || p == 'A' {
		return p
	}
	return p - 1
}
