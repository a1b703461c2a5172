package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custview/custview/internal/viewer"
)

var (
	errQuit = errors.New("quit")
	errHelp = errors.New("help")
)

const helpText = `commands:
  search <text>   filter by name or location (empty clears)
  sort date|time  sort by key; repeat to flip direction
  page <n>        go to page n
  next, prev      move one page
  help            show this help
  quit            exit`

// parseCommand turns one input line into a session event. A nil event with a
// nil error means the line is blank.
func parseCommand(line string, current viewer.State) (viewer.Event, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return nil, nil
	case "q", "quit", "exit":
		return nil, errQuit
	case "h", "help", "?":
		return nil, errHelp
	case "s", "search", "/":
		return viewer.SearchEvent{Term: arg}, nil
	case "sort":
		key, err := viewer.ParseSortKey(arg)
		if err != nil {
			return nil, err
		}
		return viewer.SortEvent{Key: key}, nil
	case "date", "time":
		key, _ := viewer.ParseSortKey(cmd)
		return viewer.SortEvent{Key: key}, nil
	case "p", "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("page wants a number, got %q", arg)
		}
		return viewer.PageEvent{Page: n}, nil
	case "n", "next":
		if current.Page == math.MaxInt {
			return viewer.PageEvent{Page: current.Page}, nil
		}
		return viewer.PageEvent{Page: current.Page + 1}, nil
	case "prev":
		return viewer.PageEvent{Page: current.Page - 1}, nil
	default:
		// A bare number is a page click.
		if n, err := strconv.Atoi(cmd); err == nil && arg == "" {
			return viewer.PageEvent{Page: n}, nil
		}
		return nil, fmt.Errorf("unknown command %q (try help)", cmd)
	}
}
