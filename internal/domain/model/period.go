package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

// presentLiteral is accepted at decoding boundaries for an ongoing period.
const presentLiteral = "present"

// dateLayouts are tried in order when parsing period bounds.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ErrInvalidDate is returned when a period bound cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// EndDate is either ongoing or a concrete end. The zero value is ongoing.
type EndDate struct {
	at *time.Time
}

// Ongoing returns an EndDate for a period that has not ended.
func Ongoing() EndDate {
	return EndDate{}
}

// EndedAt returns an EndDate at t.
func EndedAt(t time.Time) EndDate {
	return EndDate{at: &t}
}

// IsOngoing reports whether the period is still running.
func (e EndDate) IsOngoing() bool {
	return e.at == nil
}

// Time returns the end and true, or the zero time and false when ongoing.
func (e EndDate) Time() (time.Time, bool) {
	if e.at == nil {
		return time.Time{}, false
	}
	return *e.at, true
}

// String renders the end as it appears in content files.
func (e EndDate) String() string {
	if e.at == nil {
		return presentLiteral
	}
	return e.at.Format("2006-01")
}

// ParseEndDate accepts "present" in any case, or a date.
func ParseEndDate(s string) (EndDate, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, presentLiteral) {
		return Ongoing(), nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return EndDate{}, err
	}
	return EndedAt(t), nil
}

// ParseDate parses a day, month or year precision date in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	// full timestamps are produced by YAML and BSON encoders
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Period is an employment or study interval.
type Period struct {
	Start time.Time
	End   EndDate
}

// periodText is the serialized form of a Period.
type periodText struct {
	Start string `yaml:"start" json:"start" bson:"start"`
	End   string `yaml:"end" json:"end" bson:"end"`
}

// ParsePeriod builds a Period from its textual bounds.
func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Period{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseEndDate(end)
	if err != nil {
		return Period{}, fmt.Errorf("end: %w", err)
	}
	return Period{Start: s, End: e}, nil
}

// UnmarshalYAML decodes {start, end} where end may be "present".
func (p *Period) UnmarshalYAML(node *yaml.Node) error {
	var raw periodText
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParsePeriod(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Period) text() periodText {
	return periodText{Start: p.Start.Format("2006-01"), End: p.End.String()}
}

// MarshalJSON encodes the period with month precision bounds.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.text())
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (p *Period) UnmarshalJSON(data []byte) error {
	var raw periodText
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePeriod(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalBSON stores the period in the same textual form as content files.
func (p Period) MarshalBSON() ([]byte, error) {
	return bson.Marshal(p.text())
}

// UnmarshalBSON decodes the form written by MarshalBSON.
func (p *Period) UnmarshalBSON(data []byte) error {
	var raw periodText
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePeriod(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Duration returns the span from Start to End, or to now when ongoing.
// Both the start and end months are counted.
func (p Period) Duration(now time.Time) Span {
	end, ok := p.End.Time()
	if !ok {
		end = now
	}
	months := (end.Year()-p.Start.Year())*12 + int(end.Month()) - int(p.Start.Month()) + 1
	if months < 0 {
		months = 0
	}
	return Span{Years: months / 12, Months: months % 12}
}

// Span is a duration in whole years and months.
type Span struct {
	Years  int
	Months int
}

// TotalMonths returns the span in months.
func (s Span) TotalMonths() int {
	return s.Years*12 + s.Months
}

// Add sums two spans, normalizing months.
func (s Span) Add(o Span) Span {
	total := s.TotalMonths() + o.TotalMonths()
	return Span{Years: total / 12, Months: total % 12}
}

// String renders the span like "2 yrs 3 mos".
func (s Span) String() string {
	var parts []string
	switch {
	case s.Years == 1:
		parts = append(parts, "1 yr")
	case s.Years > 1:
		parts = append(parts, fmt.Sprintf("%d yrs", s.Years))
	}
	switch {
	case s.Months == 1:
		parts = append(parts, "1 mo")
	case s.Months > 1:
		parts = append(parts, fmt.Sprintf("%d mos", s.Months))
	}
	if len(parts) == 0 {
		return "0 mos"
	}
	return strings.Join(parts, " ")
}

// MarshalJSON includes the rendered label next to the numbers.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Years  int    `json:"years"`
		Months int    `json:"months"`
		Label  string `json:"label"`
	}{s.Years, s.Months, s.String()})
}
