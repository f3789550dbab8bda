package report

import (
	"sort"
	"strconv"

	"factory-backend/internal/timeutil"
)

// Table is one flattened, export-ready grid.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func rawTable(entries []Entry) Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	t := Table{Name: "Raw", Header: []string{"ID", "Owner", "Category", "Quantity", "Model", "Timestamp"}}
	for _, e := range sorted {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.ID), e.Owner, e.Category, strconv.Itoa(e.Quantity), e.Model, e.RawTime,
		})
	}
	return t
}

// DailyTables flattens a daily report into its five export tables.
func (r *DailyReport) DailyTables() []Table {
	ownerCategory := Table{Name: "Owner_Category", Header: []string{"Owner", "Category", "Quantity"}}
	ownerTotal := Table{Name: "Owner_Total", Header: []string{"Owner", "Quantity"}}
	for _, o := range r.Owners {
		for _, c := range o.Categories {
			ownerCategory.Rows = append(ownerCategory.Rows,
				[]string{o.Owner, c.Category, strconv.Itoa(c.Quantity)})
		}
		ownerTotal.Rows = append(ownerTotal.Rows, []string{o.Owner, strconv.Itoa(o.Total)})
	}

	catTotals := make(map[string]int)
	for _, e := range r.Entries {
		catTotals[e.Category] += e.Quantity
	}
	categoryTotal := Table{Name: "Category_Total", Header: []string{"Category", "Quantity"}}
	labels := make([]string, 0, len(catTotals))
	for label := range catTotals {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		categoryTotal.Rows = append(categoryTotal.Rows, []string{label, strconv.Itoa(catTotals[label])})
	}

	summary := Table{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Date", r.Date.Format(timeutil.DateLayout)},
			{"Entries", strconv.Itoa(len(r.Entries))},
			{"Workers", strconv.Itoa(len(r.Owners))},
			{"Grand total", strconv.Itoa(r.Total)},
		},
	}

	return []Table{rawTable(r.Entries), ownerCategory, ownerTotal, categoryTotal, summary}
}

// MonthlyTables flattens a monthly report into its six export tables.
func (r *MonthlyReport) MonthlyTables() []Table {
	dayOwnerCategory := Table{Name: "Day_Owner_Category", Header: []string{"Day", "Owner", "Category", "Quantity"}}
	dayOwner := Table{Name: "Day_Owner", Header: []string{"Day", "Owner", "Quantity"}}
	for _, day := range r.Days {
		for _, o := range day.Owners {
			for _, c := range o.Categories {
				dayOwnerCategory.Rows = append(dayOwnerCategory.Rows,
					[]string{strconv.Itoa(day.Day), o.Owner, c.Category, strconv.Itoa(c.Quantity)})
			}
			dayOwner.Rows = append(dayOwner.Rows,
				[]string{strconv.Itoa(day.Day), o.Owner, strconv.Itoa(o.Total)})
		}
	}

	ownerTotal := Table{Name: "Owner_Total", Header: []string{"Owner", "Quantity"}}
	for _, o := range r.OwnerTotals {
		ownerTotal.Rows = append(ownerTotal.Rows, []string{o.Owner, strconv.Itoa(o.Quantity)})
	}

	categoryTotal := Table{Name: "Category_Total", Header: []string{"Category", "Quantity"}}
	for _, c := range r.CategoryTotals {
		categoryTotal.Rows = append(categoryTotal.Rows, []string{c.Category, strconv.Itoa(c.Quantity)})
	}

	// Owner × category over the whole month
	type ocKey struct{ owner, category string }
	ocTotals := make(map[ocKey]int)
	for _, e := range r.Entries {
		ocTotals[ocKey{e.Owner, e.Category}] += e.Quantity
	}
	keys := make([]ocKey, 0, len(ocTotals))
	for k := range ocTotals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].owner != keys[j].owner {
			return keys[i].owner < keys[j].owner
		}
		return keys[i].category < keys[j].category
	})
	ownerCategory := Table{Name: "Owner_Category", Header: []string{"Owner", "Category", "Quantity"}}
	for _, k := range keys {
		ownerCategory.Rows = append(ownerCategory.Rows,
			[]string{k.owner, k.category, strconv.Itoa(ocTotals[k])})
	}

	return []Table{rawTable(r.Entries), dayOwnerCategory, dayOwner, ownerTotal, categoryTotal, ownerCategory}
}
