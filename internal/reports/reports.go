// Package reports computes the read-only views and aggregates the reporting
// surface serves. Everything here is a pure function over the in-memory
// collections; records with unparseable dates are skipped, never fatal,
// so stale or hand-edited rows cannot break a report.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

const dateLayout = "2006-01-02"

// PlanRevenue is one row of the revenue-by-plan report.
type PlanRevenue struct {
	MembershipType string
	Total          decimal.Decimal
}

// RevenueByType sums payment amounts grouped by plan type. Rows appear in
// the order each type is first seen in the ledger.
func RevenueByType(payments []models.Payment) []PlanRevenue {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, p := range payments {
		if _, seen := totals[p.MembershipType]; !seen {
			order = append(order, p.MembershipType)
		}
		totals[p.MembershipType] = totals[p.MembershipType].Add(p.Amount)
	}

	rows := make([]PlanRevenue, 0, len(order))
	for _, t := range order {
		rows = append(rows, PlanRevenue{MembershipType: t, Total: totals[t]})
	}
	return rows
}

// WeekdayVisits is one row of the busiest-weekday tally.
type WeekdayVisits struct {
	Weekday string
	Visits  int
}

// BusiestWeekday tallies attendance per calendar weekday and names the
// busiest one. Rows keep first-seen order, which also decides ties: the
// weekday tallied first wins. An empty tally returns "" and no rows.
func BusiestWeekday(records []models.Attendance) (string, []WeekdayVisits) {
	counts := map[string]int{}
	order := []string{}
	for _, a := range records {
		day, err := time.Parse(dateLayout, a.Date)
		if err != nil {
			continue
		}
		name := day.Weekday().String()
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	busiest := ""
	rows := make([]WeekdayVisits, 0, len(order))
	for _, name := range order {
		rows = append(rows, WeekdayVisits{Weekday: name, Visits: counts[name]})
		if busiest == "" || counts[name] > counts[busiest] {
			busiest = name
		}
	}
	return busiest, rows
}

// TrainerGroup is one trainer's roster.
type TrainerGroup struct {
	Trainer string
	Members []models.Member
}

// GroupByTrainer buckets non-expired members by trainer. Buckets appear in
// first-seen trainer order and keep the source collection's member order.
func GroupByTrainer(members []models.Member) []TrainerGroup {
	buckets := map[string][]models.Member{}
	order := []string{}
	for _, m := range members {
		if m.Status.Is(enums.MemberStatusExpired) {
			continue
		}
		if _, seen := buckets[m.Trainer]; !seen {
			order = append(order, m.Trainer)
		}
		buckets[m.Trainer] = append(buckets[m.Trainer], m)
	}

	groups := make([]TrainerGroup, 0, len(order))
	for _, t := range order {
		groups = append(groups, TrainerGroup{Trainer: t, Members: buckets[t]})
	}
	return groups
}

// FinancialSummary totals a batch of payments, typically one month's.
type FinancialSummary struct {
	Total decimal.Decimal
	Count int
}

func Summarize(payments []models.Payment) FinancialSummary {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return FinancialSummary{Total: total, Count: len(payments)}
}
