package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkhatri/moneyman/internal/models"
)

// Granularity selects the bucket size for period breakdowns.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
	Yearly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// ParseGranularity parses a granularity name, accepting both the noun and
// the adverb form ("month" / "monthly").
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown granularity %q", s)
	}
}

// DefaultBucketLimit is the number of buckets returned when the caller does
// not ask for a specific limit.
const DefaultBucketLimit = 12

// Bucket is one time period's income/expense/net summary.
//
// Key is a zero-padded, year-first string so that descending lexicographic
// order equals descending chronological order; the format must stay that way
// for the sort below to be correct.
type Bucket struct {
	Key     string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// GroupByPeriod buckets transactions by calendar period and returns the
// most recent buckets first, truncated to limit (DefaultBucketLimit when
// limit is zero or negative).
//
// Per bucket: income sums income amounts, expense sums expense amounts, and
// net is income minus expense plus adjustments. Lend and borrow never affect
// a bucket's numbers, but still materialize the bucket itself.
func GroupByPeriod(txs []models.Transaction, g Granularity, limit int) []Bucket {
	if limit <= 0 {
		limit = DefaultBucketLimit
	}

	buckets := make(map[string]*Bucket)
	for _, tx := range txs {
		key := bucketKey(tx.Date, g)
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{Key: key}
			buckets[key] = b
		}

		switch tx.Type {
		case models.TypeIncome:
			b.Income = b.Income.Add(tx.Amount)
			b.Net = b.Net.Add(tx.Amount)
		case models.TypeExpense:
			b.Expense = b.Expense.Add(tx.Amount)
			b.Net = b.Net.Sub(tx.Amount)
		case models.TypeAdjustment:
			b.Net = b.Net.Add(tx.Amount)
		}
	}

	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func bucketKey(t time.Time, g Granularity) string {
	t = t.UTC()
	switch g {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		return fmt.Sprintf("%d-W%02d", t.Year(), weekNumber(t))
	case Monthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}

// weekNumber computes the ISO-8601-style week number with the Thursday
// pivot: shift the date to the Thursday of its week, then count weeks from
// that year's January 1st.
func weekNumber(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		day = 7 // Sunday closes the week
	}
	thursday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 4-day)
	return (thursday.YearDay() + 6) / 7
}
