package archive

import (
	"time"

	"vms-gateway/internal/domain"
)

const minutesPerDay = 1440

// TimelineSpan is a sequence's position on a 24-hour timeline, as fractions
// of the day in [0,1]. Presentation math for the clickable timeline.
type TimelineSpan struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Timeline maps a sequence onto the day: (hour*60+minute)/1440 for both
// ends, clipped to [0,1]. A 06:00-07:30 sequence yields 0.25 and 0.3125.
func Timeline(seq domain.ArchiveSequence) TimelineSpan {
	return TimelineSpan{
		Start: dayFraction(seq.Start),
		End:   dayFraction(seq.End),
	}
}

func dayFraction(t time.Time) float64 {
	f := float64(t.Hour()*60+t.Minute()) / minutesPerDay
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
