package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// Month is a calendar month, always held as the first day of that month in UTC.
type Month struct {
	t time.Time
}

// MonthOf normalizes any instant to the first day of its calendar month.
func MonthOf(t time.Time) Month {
	return Month{t: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// CurrentMonth returns the month containing now (UTC).
func CurrentMonth() Month {
	return MonthOf(time.Now().UTC())
}

// ParseMonth accepts "YYYY-MM" or "YYYY-MM-DD". The day, if present, is discarded.
func ParseMonth(s string) (Month, error) {
	if t, err := time.Parse(monthLayout, s); err == nil {
		return MonthOf(t), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM or YYYY-MM-DD", s)
	}
	return MonthOf(t), nil
}

func (m Month) Time() time.Time { return m.t }

func (m Month) IsZero() bool { return m.t.IsZero() }

func (m Month) Next() Month { return Month{t: m.t.AddDate(0, 1, 0)} }

func (m Month) Prev() Month { return Month{t: m.t.AddDate(0, -1, 0)} }

func (m Month) Equal(o Month) bool { return m.t.Equal(o.t) }

// String renders the month as YYYY-MM.
func (m Month) String() string { return m.t.Format(monthLayout) }

// Date renders the first day of the month as YYYY-MM-DD, the stored form.
func (m Month) Date() string { return m.t.Format(dateLayout) }

func (m Month) Value() (driver.Value, error) {
	return m.t, nil
}

func (m *Month) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*m = MonthOf(v)
		return nil
	case []byte:
		parsed, err := ParseMonth(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case string:
		parsed, err := ParseMonth(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case nil:
		*m = Month{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Month", src)
}

func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Date())
}

func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
