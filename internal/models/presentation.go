package models

// StatusPresentation is the single status→presentation lookup shared
// by every caller that renders a booking status. The original screens
// each carried their own switch over status; this table replaces them.
type StatusPresentation struct {
	Label      string
	Color      string
	Background string
	Icon       string
}

var statusPresentations = map[Status]StatusPresentation{
	StatusConfirmed: {Label: "Confirmed", Color: "#059669", Background: "#ECFDF5", Icon: "check-circle"},
	StatusPending:   {Label: "Pending", Color: "#D97706", Background: "#FFFBEB", Icon: "clock"},
	StatusCancelled: {Label: "Cancelled", Color: "#DC2626", Background: "#FEF2F2", Icon: "x-circle"},
}

// PresentationFor returns the presentation for a status. Unknown
// statuses get a neutral fallback rather than an error.
func PresentationFor(s Status) StatusPresentation {
	if p, ok := statusPresentations[s]; ok {
		return p
	}
	return StatusPresentation{Label: string(s), Color: "#6B7280", Background: "#F9FAFB"}
}
