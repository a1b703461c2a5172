// Package viewer is the presentation client for the customer list: view
// state, the transitions that change it, rendering of a page of rows, and
// the session loop that fetches records from the query API.
package viewer

import (
	"fmt"
	"strings"
)

// SortKey selects what a page is ordered by.
type SortKey int

const (
	// SortByDate orders by creation timestamp.
	SortByDate SortKey = iota
	// SortByTime orders by the formatted time of day, ignoring the date.
	SortByTime
)

func (k SortKey) String() string {
	switch k {
	case SortByDate:
		return "date"
	case SortByTime:
		return "time"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// ParseSortKey accepts "date" or "time", case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return SortByDate, nil
	case "time":
		return SortByTime, nil
	default:
		return 0, fmt.Errorf("unknown sort key %q: want date or time", s)
	}
}

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (d Direction) toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// State is the complete view state. It is a value: transitions return a new
// State and leave the receiver untouched.
type State struct {
	SearchTerm string
	SortBy     SortKey
	Direction  Direction
	Page       int
}

// InitialState is the state before any user input.
func InitialState() State {
	return State{
		SortBy:    SortByDate,
		Direction: Ascending,
		Page:      1,
	}
}

// Search sets the search term and returns to page 1.
func (s State) Search(term string) (State, bool) {
	next := s
	next.SearchTerm = term
	next.Page = 1
	return next, needsFetch(s, next)
}

// SortOn applies a sort key. Repeating the current key flips the direction;
// a new key resets the direction to ascending.
func (s State) SortOn(key SortKey) (State, bool) {
	next := s
	if key == s.SortBy {
		next.Direction = s.Direction.toggle()
	} else {
		next.SortBy = key
		next.Direction = Ascending
	}
	return next, needsFetch(s, next)
}

// GoToPage moves to page n. Pages below 1 become 1; there is no upper bound.
func (s State) GoToPage(n int) (State, bool) {
	if n < 1 {
		n = 1
	}
	next := s
	next.Page = n
	return next, needsFetch(s, next)
}

// needsFetch reports whether the transition changed a field the query
// carries. Search term and direction only affect local rendering.
func needsFetch(prev, next State) bool {
	return prev.SortBy != next.SortBy || prev.Page != next.Page
}
