package pricing

import "time"

// Date layouts: the UI collects dates as DD/MM/YYYY, bookings store
// them as ISO YYYY-MM-DD.
const (
	DisplayLayout = "02/01/2006"
	ISOLayout     = "2006-01-02"
)

// ParseISO parses a YYYY-MM-DD storage-form date.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}

// ParseDisplay parses a DD/MM/YYYY display-form date.
func ParseDisplay(s string) (time.Time, error) {
	return time.Parse(DisplayLayout, s)
}

// FormatISO renders a date in storage form.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// FormatDisplay renders a date in display form.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// DisplayToISO converts DD/MM/YYYY to YYYY-MM-DD. Formatting is
// best-effort: malformed input yields "" rather than an error.
func DisplayToISO(s string) string {
	t, err := ParseDisplay(s)
	if err != nil {
		return ""
	}
	return FormatISO(t)
}

// ISOToDisplay converts YYYY-MM-DD to DD/MM/YYYY, best-effort.
func ISOToDisplay(s string) string {
	t, err := ParseISO(s)
	if err != nil {
		return ""
	}
	return FormatDisplay(t)
}
