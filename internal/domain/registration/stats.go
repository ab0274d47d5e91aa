package registration

import "math"

type Summary struct {
	Total              int `json:"total"`
	Attendees          int `json:"attendees"`
	Businesses         int `json:"businesses"`
	EmailsSent         int `json:"emailsSent"`
	SuccessRatePercent int `json:"successRatePercent"`
}

// Aggregate derives the dashboard summary from a full listing. It is
// recomputed on every read; the store stays small enough that caching
// would only add staleness.
func Aggregate(regs []Registration) Summary {
	s := Summary{Total: len(regs)}

	for _, r := range regs {
		switch r.Kind {
		case KindAttendee:
			s.Attendees++
		case KindBusiness:
			s.Businesses++
		}

		if r.EmailStatus == StatusSent {
			s.EmailsSent++
		}
	}

	if s.Total > 0 {
		s.SuccessRatePercent = int(math.Round(float64(s.EmailsSent) / float64(s.Total) * 100))
	}

	return s
}
