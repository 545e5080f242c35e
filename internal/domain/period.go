package domain

import "time"

type PeriodShape string

const (
	PeriodShapeDaily   PeriodShape = "daily"
	PeriodShapeMonthly PeriodShape = "monthly"
)

// PeriodInterval is a [Start, End] window resolved from a dashboard
// period token, plus the bucket layout charts should use when
// rendering it.
type PeriodInterval struct {
	Token   string
	Start   time.Time
	End     time.Time
	Shape   PeriodShape
	Buckets []PeriodBucket
}

// PeriodBucket is one chart bucket (a day or a calendar month),
// oldest first.
type PeriodBucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval. Both bounds are
// treated as inclusive - the feed and metrics layers count records whose
// timestamps land exactly on either edge.
func (p PeriodInterval) Contains(t time.Time) bool {
	if t.Before(p.Start) {
		return false
	}
	return !t.After(p.End)
}
