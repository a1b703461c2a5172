package viewer

import (
	"sort"
	"strings"
	"time"

	"github.com/custview/custview/internal/model"
)

// PageSize is the number of rows per page.
const PageSize = 20

// Row and column formats.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Paging decides how page membership is chosen.
type Paging int

const (
	// PagingFetchOrder slices the filtered records in fetch order and then
	// sorts only that window. Page 2 holds the 21st to 40th fetched matches.
	PagingFetchOrder Paging = iota
	// PagingSortedRank sorts every match first and then slices, so page 2
	// holds the 21st to 40th matches in sorted order.
	PagingSortedRank
)

// Options tune rendering.
type Options struct {
	// Location formats dates and times. Nil means time.Local.
	Location *time.Location
	Paging   Paging
}

// Row is one rendered table row.
type Row struct {
	Sno      int64
	Name     string
	Age      int
	Phone    string
	Location string
	Date     string
	Time     string
}

// View is everything needed to draw the screen for one state.
type View struct {
	Rows []Row
	// PageCount is derived from every fetched record, not just the matches.
	PageCount int
	Page      int
	Total     int
	Matched   int
	SortBy    SortKey
	Direction Direction
	Search    string
}

// PageCount returns ceil(total / PageSize).
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Render filters, pages and orders records for state. records is not modified.
func Render(records []*model.Customer, state State, opts Options) View {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	page := state.Page
	if page < 1 {
		page = 1
	}

	matched := filter(records, state.SearchTerm)

	var window []*model.Customer
	switch opts.Paging {
	case PagingSortedRank:
		sortRecords(matched, state.SortBy, loc)
		if state.Direction == Descending {
			reverse(matched)
		}
		window = pageWindow(matched, page)
	default:
		window = pageWindow(matched, page)
		sortRecords(window, state.SortBy, loc)
		if state.Direction == Descending {
			reverse(window)
		}
	}

	rows := make([]Row, 0, len(window))
	for _, c := range window {
		rows = append(rows, toRow(c, loc))
	}

	return View{
		Rows:      rows,
		PageCount: PageCount(len(records)),
		Page:      page,
		Total:     len(records),
		Matched:   len(matched),
		SortBy:    state.SortBy,
		Direction: state.Direction,
		Search:    state.SearchTerm,
	}
}

// filter returns a new slice of records whose name or location contains
// term, ignoring case. An empty term matches everything.
func filter(records []*model.Customer, term string) []*model.Customer {
	out := make([]*model.Customer, 0, len(records))
	needle := strings.ToLower(term)
	for _, c := range records {
		if c == nil {
			continue
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(c.CustomerName), needle) ||
			strings.Contains(strings.ToLower(c.Location), needle) {
			out = append(out, c)
		}
	}
	return out
}

// pageWindow returns a copy of the 1-based page of records.
func pageWindow(records []*model.Customer, page int) []*model.Customer {
	// Compare before multiplying so huge page numbers cannot overflow.
	if page < 1 || page-1 >= PageCount(len(records)) {
		return []*model.Customer{}
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return append([]*model.Customer(nil), records[start:end]...)
}

// sortRecords orders records in place, keeping ties in their current order.
func sortRecords(records []*model.Customer, key SortKey, loc *time.Location) {
	switch key {
	case SortByTime:
		keys := make(map[*model.Customer]string, len(records))
		for _, c := range records {
			keys[c] = c.CreatedAt.In(loc).Format(TimeLayout)
		}
		sort.SliceStable(records, func(i, j int) bool {
			return keys[records[i]] < keys[records[j]]
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		})
	}
}

func reverse(records []*model.Customer) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}

func toRow(c *model.Customer, loc *time.Location) Row {
	created := c.CreatedAt.In(loc)
	return Row{
		Sno:      c.Sno,
		Name:     c.CustomerName,
		Age:      c.Age,
		Phone:    c.Phone,
		Location: c.Location,
		Date:     created.Format(DateLayout),
		Time:     created.Format(TimeLayout),
	}
}
