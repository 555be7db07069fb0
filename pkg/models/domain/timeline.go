package domain

// Timeline lays the period systems of a chart side by side on an age axis.
type Timeline struct {
	Subject string
	Age     int
	Tracks  []TimelineTrack
}

type TimelineTrack struct {
	Name    string
	Periods []TimelinePeriod
}

// TimelinePeriod spans ages [Start, End).
type TimelinePeriod struct {
	Label string
	Start int
	End   int
}

func (p TimelinePeriod) Years() int {
	return p.End - p.Start
}

// Current returns the period of the track in force at age.
func (t TimelineTrack) Current(age int) (TimelinePeriod, bool) {
	for _, p := range t.Periods {
		if age >= p.Start && age < p.End {
			return p, true
		}
	}
	return TimelinePeriod{}, false
}
