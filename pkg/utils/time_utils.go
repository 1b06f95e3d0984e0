package utils

import "time"

const dateLayout = "2006-01-02"

// ISTLocation returns the Indian Standard Time zone, falling back to a fixed
// +05:30 offset when the tz database is missing from the runtime image.
func ISTLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, ISTLocation())
}
