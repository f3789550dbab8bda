// Package report turns the flat production log into daily and monthly
// summaries plus export-ready tables. Everything here is a pure function
// over a snapshot of entries fetched once by the caller; nothing re-queries
// the store mid-computation, and no malformed record may abort a report.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"factory-backend/internal/models"
	"factory-backend/internal/timeutil"
)

// Entry is the parsed view of a stored production entry. Entries whose
// timestamp matches no recognised layout never become an Entry; quantities
// that fail to parse count as zero.
type Entry struct {
	ID       int
	Owner    string
	Category string
	Quantity int
	Time     time.Time
	Model    string
	RawTime  string
}

// CategoryTotal is one category's summed quantity within some grouping.
type CategoryTotal struct {
	Category string
	Quantity int
}

// OwnerBreakdown is one owner's subtotal and per-category split.
type OwnerBreakdown struct {
	Owner      string
	Total      int
	Categories []CategoryTotal
}

// OwnerTotal is one owner's summed quantity.
type OwnerTotal struct {
	Owner    string
	Quantity int
}

// DailyReport aggregates one calendar day.
type DailyReport struct {
	Date    time.Time
	Entries []Entry
	Owners  []OwnerBreakdown // alphabetical, categories alphabetical within
	Total   int
}

// DaySection is one calendar day inside a monthly report.
type DaySection struct {
	Day    int
	Total  int
	Owners []OwnerBreakdown // descending subtotal, ties by name
}

// MonthlyReport aggregates one calendar month.
type MonthlyReport struct {
	Month          time.Time
	Entries        []Entry
	Days           []DaySection
	OwnerTotals    []OwnerTotal    // descending, ties by name
	CategoryTotals []CategoryTotal // descending, ties by label
	Total          int
}

// parseQuantity coerces a stored quantity to an integer; malformed values
// count as zero rather than failing the report.
func parseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// normalize parses stored entries and re-maps stale owner fields to the
// live display name where the stored value matches an account login.
func normalize(entries []*models.ProductionEntry, accounts []*models.Account) []Entry {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.Login] = a.Name
	}

	parsed := make([]Entry, 0, len(entries))
	for _, e := range entries {
		ts, ok := timeutil.ParseEntryTime(e.Timestamp)
		if !ok {
			continue // unparseable timestamp: excluded, never fatal
		}
		owner := e.Owner
		if live, ok := names[owner]; ok {
			owner = live
		}
		parsed = append(parsed, Entry{
			ID:       e.ID,
			Owner:    owner,
			Category: e.Category,
			Quantity: parseQuantity(e.Quantity),
			Time:     ts,
			Model:    e.Model,
			RawTime:  e.Timestamp,
		})
	}
	return parsed
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(timeutil.Factory).Date()
	by, bm, bd := b.In(timeutil.Factory).Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.In(timeutil.Factory).Date()
	by, bm, _ := b.In(timeutil.Factory).Date()
	return ay == by && am == bm
}

// groupOwners builds per-owner breakdowns from a slice of entries. The
// caller chooses the ordering afterwards.
func groupOwners(entries []Entry) []OwnerBreakdown {
	byOwner := make(map[string]map[string]int)
	for _, e := range entries {
		if byOwner[e.Owner] == nil {
			byOwner[e.Owner] = make(map[string]int)
		}
		byOwner[e.Owner][e.Category] += e.Quantity
	}

	owners := make([]OwnerBreakdown, 0, len(byOwner))
	for owner, cats := range byOwner {
		b := OwnerBreakdown{Owner: owner}
		for cat, qty := range cats {
			b.Categories = append(b.Categories, CategoryTotal{Category: cat, Quantity: qty})
			b.Total += qty
		}
		owners = append(owners, b)
	}
	return owners
}

// BuildDaily aggregates the entries falling on the calendar day of date.
func BuildDaily(entries []*models.ProductionEntry, accounts []*models.Account, date time.Time) *DailyReport {
	var dayEntries []Entry
	for _, e := range normalize(entries, accounts) {
		if sameDay(e.Time, date) {
			dayEntries = append(dayEntries, e)
		}
	}

	owners := groupOwners(dayEntries)
	sort.Slice(owners, func(i, j int) bool { return owners[i].Owner < owners[j].Owner })
	total := 0
	for i := range owners {
		cats := owners[i].Categories
		sort.Slice(cats, func(a, b int) bool { return cats[a].Category < cats[b].Category })
		total += owners[i].Total
	}

	return &DailyReport{
		Date:    timeutil.StartOfDay(date),
		Entries: dayEntries,
		Owners:  owners,
		Total:   total,
	}
}

// Empty reports whether the day held no usable entries
func (r *DailyReport) Empty() bool { return len(r.Entries) == 0 }

// BuildMonthly aggregates the entries falling in the calendar month of date.
func BuildMonthly(entries []*models.ProductionEntry, accounts []*models.Account, date time.Time) *MonthlyReport {
	var monthEntries []Entry
	for _, e := range normalize(entries, accounts) {
		if sameMonth(e.Time, date) {
			monthEntries = append(monthEntries, e)
		}
	}

	byDay := make(map[int][]Entry)
	for _, e := range monthEntries {
		byDay[e.Time.In(timeutil.Factory).Day()] = append(byDay[e.Time.In(timeutil.Factory).Day()], e)
	}

	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	r := &MonthlyReport{
		Month:   timeutil.StartOfMonth(date),
		Entries: monthEntries,
	}

	ownerMonth := make(map[string]int)
	categoryMonth := make(map[string]int)

	for _, day := range days {
		owners := groupOwners(byDay[day])
		// Owners by descending subtotal, ties broken by name
		sort.Slice(owners, func(i, j int) bool {
			if owners[i].Total != owners[j].Total {
				return owners[i].Total > owners[j].Total
			}
			return owners[i].Owner < owners[j].Owner
		})
		section := DaySection{Day: day}
		for i := range owners {
			cats := owners[i].Categories
			// Categories by descending quantity, ties by label
			sort.Slice(cats, func(a, b int) bool {
				if cats[a].Quantity != cats[b].Quantity {
					return cats[a].Quantity > cats[b].Quantity
				}
				return cats[a].Category < cats[b].Category
			})
			section.Total += owners[i].Total
			ownerMonth[owners[i].Owner] += owners[i].Total
		}
		section.Owners = owners
		r.Total += section.Total
		r.Days = append(r.Days, section)
	}

	for _, e := range monthEntries {
		categoryMonth[e.Category] += e.Quantity
	}

	for owner, qty := range ownerMonth {
		r.OwnerTotals = append(r.OwnerTotals, OwnerTotal{Owner: owner, Quantity: qty})
	}
	sort.Slice(r.OwnerTotals, func(i, j int) bool {
		if r.OwnerTotals[i].Quantity != r.OwnerTotals[j].Quantity {
			return r.OwnerTotals[i].Quantity > r.OwnerTotals[j].Quantity
		}
		return r.OwnerTotals[i].Owner < r.OwnerTotals[j].Owner
	})

	for cat, qty := range categoryMonth {
		r.CategoryTotals = append(r.CategoryTotals, CategoryTotal{Category: cat, Quantity: qty})
	}
	sort.Slice(r.CategoryTotals, func(i, j int) bool {
		if r.CategoryTotals[i].Quantity != r.CategoryTotals[j].Quantity {
			return r.CategoryTotals[i].Quantity > r.CategoryTotals[j].Quantity
		}
		return r.CategoryTotals[i].Category < r.CategoryTotals[j].Category
	})

	return r
}

// Empty reports whether the month held no usable entries
func (r *MonthlyReport) Empty() bool { return len(r.Entries) == 0 }

// RenderDaily produces the human-readable daily breakdown.
func (r *DailyReport) RenderDaily() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily production report — %s\n", r.Date.Format(timeutil.DateLayout))
	for _, o := range r.Owners {
		fmt.Fprintf(&b, "\n%s:\n", o.Owner)
		for _, c := range o.Categories {
			fmt.Fprintf(&b, "    • %s: %d\n", c.Category, c.Quantity)
		}
		fmt.Fprintf(&b, "  Total: %d\n", o.Total)
	}
	fmt.Fprintf(&b, "\nGrand total (day): %d", r.Total)
	return b.String()
}

// RenderMonthly produces the human-readable monthly breakdown.
func (r *MonthlyReport) RenderMonthly() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Production report — %s\n", r.Month.Format("January 2006"))
	for _, day := range r.Days {
		fmt.Fprintf(&b, "\nDay %d — total: %d\n", day.Day, day.Total)
		for _, o := range day.Owners {
			fmt.Fprintf(&b, "  %s: %d\n", o.Owner, o.Total)
			for _, c := range o.Categories {
				fmt.Fprintf(&b, "    • %s: %d\n", c.Category, c.Quantity)
			}
		}
	}
	b.WriteString("\nMonthly totals by worker:\n")
	for _, o := range r.OwnerTotals {
		fmt.Fprintf(&b, "  %s: %d\n", o.Owner, o.Quantity)
	}
	b.WriteString("\nMonthly totals by category:\n")
	for _, c := range r.CategoryTotals {
		fmt.Fprintf(&b, "  %s: %d\n", c.Category, c.Quantity)
	}
	fmt.Fprintf(&b, "\nGrand total (month): %d", r.Total)
	return b.String()
}
