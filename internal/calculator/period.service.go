package calculator

import (
	"agencyhub/internal/domain"
	"strconv"
	"time"
)

const defaultPeriodToken = "6m"

// maximum number of daily buckets a chart renders for numeric tokens
const maxDailyBuckets = 30

// ResolvePeriod maps a dashboard period token to a concrete interval and
// bucket layout, relative to now. Unrecognized tokens fall back to the
// 6-month window rather than erroring - a stale or mistyped token should
// never blank the dashboard.
func ResolvePeriod(token string, now time.Time) domain.PeriodInterval {
	switch token {
	case "today":
		start := startOfDay(now)
		return domain.PeriodInterval{
			Token:   token,
			Start:   start,
			End:     now,
			Shape:   domain.PeriodShapeDaily,
			Buckets: dailyBuckets(start, now, maxDailyBuckets),
		}
	case "yesterday":
		start := startOfDay(now).AddDate(0, 0, -1)
		end := startOfDay(now).Add(-time.Second)
		return domain.PeriodInterval{
			Token:   token,
			Start:   start,
			End:     end,
			Shape:   domain.PeriodShapeDaily,
			Buckets: dailyBuckets(start, end, maxDailyBuckets),
		}
	case "7", "14", "30":
		n, _ := strconv.Atoi(token)
		start := now.AddDate(0, 0, -n)
		return domain.PeriodInterval{
			Token:   token,
			Start:   start,
			End:     now,
			Shape:   domain.PeriodShapeDaily,
			Buckets: dailyBuckets(start, now, min(n+1, maxDailyBuckets)),
		}
	case "current_month":
		start := startOfMonth(now)
		return domain.PeriodInterval{
			Token:   token,
			Start:   start,
			End:     now,
			Shape:   domain.PeriodShapeDaily,
			Buckets: dailyBuckets(start, now, maxDailyBuckets+1),
		}
	case "last_month":
		start := startOfMonth(now).AddDate(0, -1, 0)
		end := startOfMonth(now).Add(-time.Second)
		return domain.PeriodInterval{
			Token:   token,
			Start:   start,
			End:     end,
			Shape:   domain.PeriodShapeDaily,
			Buckets: dailyBuckets(start, end, maxDailyBuckets+1),
		}
	case "3m", "6m", "12m", "24m":
		n, _ := strconv.Atoi(token[:len(token)-1])
		return monthlyInterval(token, n, now)
	default:
		resolved := monthlyInterval(token, 6, now)
		return resolved
	}
}

func monthlyInterval(token string, months int, now time.Time) domain.PeriodInterval {
	start := startOfMonth(now).AddDate(0, -months, 0)
	buckets := make([]domain.PeriodBucket, 0, months)
	for i := 0; i < months; i++ {
		bucketStart := start.AddDate(0, i, 0)
		buckets = append(buckets, domain.PeriodBucket{
			Label: bucketStart.Format("Jan"),
			Start: bucketStart,
			End:   bucketStart.AddDate(0, 1, 0).Add(-time.Second),
		})
	}
	return domain.PeriodInterval{
		Token:   token,
		Start:   start,
		End:     now,
		Shape:   domain.PeriodShapeMonthly,
		Buckets: buckets,
	}
}

// dailyBuckets returns one bucket per calendar day covering [start, end],
// oldest first, keeping only the most recent maxBuckets days.
func dailyBuckets(start, end time.Time, maxBuckets int) []domain.PeriodBucket {
	buckets := []domain.PeriodBucket{}
	for day := startOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, domain.PeriodBucket{
			Label: day.Format("Jan 2"),
			Start: day,
			End:   day.AddDate(0, 0, 1).Add(-time.Second),
		})
	}
	if len(buckets) > maxBuckets {
		buckets = buckets[len(buckets)-maxBuckets:]
	}
	return buckets
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
