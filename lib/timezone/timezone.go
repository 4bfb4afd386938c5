package timezone

import (
	"strings"
	"time"
)

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be eastern because draftkings slates, contest
// dates and CSV exports are all expressed in US/Eastern regardless
// of where the process runs
func Now() time.Time {
	return time.Now().In(Location)
}

// converts a draftkings API timestamp (a naive UTC ISO string,
// sometimes with a fractional second tail) to US/Eastern
func ConvertContestTime(tstr string) (time.Time, error) {
	if idx := strings.IndexByte(tstr, '.'); idx >= 0 {
		tstr = tstr[:idx]
	}
	t, err := time.Parse("2006-01-02T15:04:05", tstr)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(Location), nil
}
