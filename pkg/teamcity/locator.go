package teamcity

import (
	"fmt"
	"strings"
)

// Locator builds the filter expression strings the TeamCity API understands:
// comma-separated key:value clauses, with parenthesised nesting for compound
// dimensions, e.g. "buildType:(id:BT_X),count:50,start:100". Clause order is
// insertion order; the server does not care, but deterministic output keeps
// cache keys and tests stable.
type Locator struct {
	clauses []string
}

// NewLocator creates an empty locator.
func NewLocator() *Locator {
	return &Locator{}
}

// With adds a key:value clause. Values containing locator metacharacters are
// wrapped in parentheses so they survive the server's parsing.
func (l *Locator) With(key, value string) *Locator {
	l.clauses = append(l.clauses, key+":"+escapeLocatorValue(value))

	return l
}

// WithInt adds a key:value clause for an integer value.
func (l *Locator) WithInt(key string, value int) *Locator {
	l.clauses = append(l.clauses, fmt.Sprintf("%s:%d", key, value))

	return l
}

// WithNested adds a key:(nested) clause from a sub-locator.
func (l *Locator) WithNested(key string, nested *Locator) *Locator {
	l.clauses = append(l.clauses, key+":("+nested.String()+")")

	return l
}

// WithCount adds the count dimension, clamped to the server-side maximum.
func (l *Locator) WithCount(count int) *Locator {
	if count > MaxPageSize {
		count = MaxPageSize
	}

	return l.WithInt("count", count)
}

// WithStart adds the start dimension.
func (l *Locator) WithStart(start int) *Locator {
	if start < 0 {
		start = 0
	}

	return l.WithInt("start", start)
}

// Clone returns an independent copy. Pagination merges cursor dimensions
// into a copy so a caller's locator is never mutated.
func (l *Locator) Clone() *Locator {
	clone := &Locator{clauses: make([]string, len(l.clauses))}
	copy(clone.clauses, l.clauses)

	return clone
}

// IsEmpty reports whether no clauses have been added.
func (l *Locator) IsEmpty() bool {
	return len(l.clauses) == 0
}

// String renders the locator expression.
func (l *Locator) String() string {
	return strings.Join(l.clauses, ",")
}

// BuildLocatorForID returns the canonical single-build locator "id:N".
func BuildLocatorForID(id int64) string {
	return fmt.Sprintf("id:%d", id)
}

func escapeLocatorValue(value string) string {
	if strings.ContainsAny(value, ",:()") {
		return "(" + value + ")"
	}

	return value
}
