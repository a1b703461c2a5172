package viewer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable draws v as an aligned text table followed by the page selector.
func WriteTable(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tAGE\tPHONE\tLOCATION\tDATE\tTIME")
	for _, r := range v.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.Name, r.Age, r.Phone, r.Location, r.Date, r.Time)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s\nsort: %s %s | search: %q | %d of %d match\n",
		pageSelector(v), v.SortBy, v.Direction, v.Search, v.Matched, v.Total)
	return err
}

// pageSelector renders one entry per page with the current page bracketed.
func pageSelector(v View) string {
	if v.PageCount == 0 {
		return "pages: none"
	}
	parts := make([]string, 0, v.PageCount)
	for p := 1; p <= v.PageCount; p++ {
		if p == v.Page {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return "pages: " + strings.Join(parts, " ")
}
