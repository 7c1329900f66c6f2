package pagination

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// DefaultMaxVisible is the number of page controls rendered when none is configured.
const DefaultMaxVisible = 7

// gapMarker is how a gap is rendered by the frontend.
const gapMarker = "..."

// Entry is a single navigation control: a page number or a gap.
type Entry struct {
	Page int
	Gap  bool
}

// PageEntry returns an Entry for page n.
func PageEntry(n int) Entry { return Entry{Page: n} }

// GapEntry returns a gap Entry.
func GapEntry() Entry { return Entry{Gap: true} }

// String renders the entry as shown in navigation.
func (e Entry) String() string {
	if e.Gap {
		return gapMarker
	}
	return strconv.Itoa(e.Page)
}

// MarshalJSON encodes a page as a number and a gap as "...".
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Gap {
		return json.Marshal(gapMarker)
	}
	return json.Marshal(e.Page)
}

// UnmarshalJSON accepts a number or the gap marker string.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != gapMarker {
			return &ConfigurationError{Field: "page_range", Message: "unexpected marker " + strconv.Quote(s)}
		}
		*e = GapEntry()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*e = PageEntry(n)
	return nil
}

// PageRange returns the compressed list of page controls for current within total pages.
// The first and last pages are always present; a single gap stands in for every
// hidden run on either side of the window around current. maxVisible < 1 uses
// DefaultMaxVisible.
func PageRange(current, total, maxVisible int) []Entry {
	if maxVisible < 1 {
		maxVisible = DefaultMaxVisible
	}
	if total <= 0 {
		return []Entry{}
	}

	if total <= maxVisible {
		entries := make([]Entry, 0, total)
		for p := 1; p <= total; p++ {
			entries = append(entries, PageEntry(p))
		}
		return entries
	}

	// slots beyond first page, last page and current
	side := float64(maxVisible-3) / 2
	leftSide := int(math.Floor(side))
	rightSide := int(math.Ceil(side))

	start := max(2, current-leftSide)
	end := min(total-1, current+rightSide)

	if current <= leftSide+2 {
		start = 2
		end = min(maxVisible-1, total-1)
	}
	if current >= total-rightSide-1 {
		end = total - 1
		start = max(2, total-maxVisible+2)
	}

	entries := make([]Entry, 0, maxVisible+2)
	entries = append(entries, PageEntry(1))
	if start > 2 {
		entries = append(entries, GapEntry())
	}
	for p := start; p <= end; p++ {
		entries = append(entries, PageEntry(p))
	}
	if end < total-1 {
		entries = append(entries, GapEntry())
	}
	if total > 1 {
		entries = append(entries, PageEntry(total))
	}
	return entries
}
