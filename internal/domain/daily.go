package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by daily log entries.
const DateLayout = "2006-01-02"

// Link is a resource referenced by a log item.
type Link struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// LogItem is a single done/todo line. On the wire it is either a plain
// string or an object {text, links}.
type LogItem struct {
	Text  string `json:"text"`
	Links []Link `json:"links,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (i *LogItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = LogItem{Text: s}
		return nil
	}

	type plain LogItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("log item: %w", err)
	}
	*i = LogItem(p)
	return nil
}

// String renders the item with its links inline, e.g. "read paper (arXiv: https://...)".
func (i LogItem) String() string {
	if len(i.Links) == 0 {
		return i.Text
	}
	parts := make([]string, 0, len(i.Links))
	for _, l := range i.Links {
		if l.Title != "" {
			parts = append(parts, l.Title+": "+l.URL)
		} else {
			parts = append(parts, l.URL)
		}
	}
	return i.Text + " (" + strings.Join(parts, " | ") + ")"
}

// LogEntry is one day of the owner's work log. Read-only input to reviews.
type LogEntry struct {
	Date string    `json:"date"`
	Done []LogItem `json:"done"`
	Todo []LogItem `json:"todo,omitempty"`
	Note string    `json:"note,omitempty"`
}

// Links returns every link of the entry's done items followed by its todo
// items. Links without a URL are skipped.
func (e LogEntry) Links() []Link {
	var out []Link
	for _, items := range [][]LogItem{e.Done, e.Todo} {
		for _, it := range items {
			for _, l := range it.Links {
				if strings.TrimSpace(l.URL) != "" {
					out = append(out, l)
				}
			}
		}
	}
	return out
}

// DateRange is an inclusive calendar range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses two YYYY-MM-DD dates. Both are required and start must not be after end.
func ParseDateRange(start, end string) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, NewValidationError("date_range", "required")
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, NewValidationError("date_range", "invalid")
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, NewValidationError("date_range", "invalid")
	}
	if e.Before(s) {
		return DateRange{}, NewValidationError("date_range", "invalid")
	}
	return DateRange{Start: s, End: e}, nil
}

// Contains reports whether the YYYY-MM-DD date lies in the range.
// Unparseable dates are treated as outside.
func (r DateRange) Contains(date string) bool {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// StartString returns the start date in DateLayout.
func (r DateRange) StartString() string { return r.Start.Format(DateLayout) }

// EndString returns the end date in DateLayout.
func (r DateRange) EndString() string { return r.End.Format(DateLayout) }

// LinkSnippet is best-effort text fetched from a link referenced by the log.
type LinkSnippet struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}
