package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

// Clock yields "now" in the business timezone. Tests replace Now.
type Clock struct {
	loc *time.Location
	Now func() time.Time
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), Now: time.Now}
}

func (c *Clock) Current() time.Time {
	return c.Now().In(c.loc)
}

// Today is the current date as YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Current().Format("2006-01-02")
}

// Month is the current month as YYYY-MM.
func (c *Clock) Month() string {
	return c.Current().Format("2006-01")
}
