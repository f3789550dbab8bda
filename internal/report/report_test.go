package report

import (
	"testing"
	"time"

	"factory-backend/internal/models"
	"factory-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, timeutil.Factory)
}

func stamp(t time.Time) string {
	return t.Format(timeutil.DateTimeLayout)
}

var testAccounts = []*models.Account{
	{Login: "w1", Name: "Alice", Role: models.RoleWorker},
	{Login: "w2", Name: "Bob", Role: models.RoleWorker},
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 5, parseQuantity("5"))
	assert.Equal(t, 12, parseQuantity(" 12 "))
	assert.Equal(t, 0, parseQuantity("abc"))
	assert.Equal(t, 0, parseQuantity("-3"))
	assert.Equal(t, 0, parseQuantity(""))
}

func TestBuildDailySums(t *testing.T) {
	day := date(2024, time.March, 5, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "A", Quantity: "3", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Alice", Category: "A", Quantity: "2", Timestamp: stamp(date(2024, time.March, 5, 14, 0))},
		{ID: 3, Owner: "Bob", Category: "B", Quantity: "4", Timestamp: stamp(date(2024, time.March, 5, 16, 0))},
		// different day, must not contribute
		{ID: 4, Owner: "Bob", Category: "B", Quantity: "9", Timestamp: stamp(date(2024, time.March, 6, 10, 0))},
	}

	r := BuildDaily(entries, testAccounts, day)
	require.False(t, r.Empty())
	assert.Len(t, r.Entries, 3)
	assert.Equal(t, 9, r.Total)

	require.Len(t, r.Owners, 2)
	assert.Equal(t, "Alice", r.Owners[0].Owner)
	assert.Equal(t, 5, r.Owners[0].Total)
	assert.Equal(t, "Bob", r.Owners[1].Owner)
	assert.Equal(t, 4, r.Owners[1].Total)

	require.Len(t, r.Owners[0].Categories, 1)
	assert.Equal(t, CategoryTotal{Category: "A", Quantity: 5}, r.Owners[0].Categories[0])
}

func TestBuildDailyOwnerRemap(t *testing.T) {
	day := date(2024, time.March, 5, 0, 0)
	entries := []*models.ProductionEntry{
		// stored under the login, must surface under the display name
		{ID: 1, Owner: "w1", Category: "A", Quantity: "3", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Alice", Category: "A", Quantity: "2", Timestamp: stamp(date(2024, time.March, 5, 10, 0))},
	}

	r := BuildDaily(entries, testAccounts, day)
	require.Len(t, r.Owners, 1)
	assert.Equal(t, "Alice", r.Owners[0].Owner)
	assert.Equal(t, 5, r.Owners[0].Total)
}

func TestBuildDailyTolerance(t *testing.T) {
	day := date(2024, time.March, 5, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "A", Quantity: "oops", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Alice", Category: "A", Quantity: "2", Timestamp: "not a timestamp"},
		{ID: 3, Owner: "Bob", Category: "B", Quantity: "4", Timestamp: stamp(date(2024, time.March, 5, 16, 0))},
	}

	r := BuildDaily(entries, testAccounts, day)
	// malformed quantity counts as zero, unparseable timestamp is dropped
	assert.Len(t, r.Entries, 2)
	assert.Equal(t, 4, r.Total)

	require.Len(t, r.Owners, 2)
	assert.Equal(t, 0, r.Owners[0].Total)
	assert.Equal(t, 4, r.Owners[1].Total)
}

func TestBuildDailyEmpty(t *testing.T) {
	r := BuildDaily(nil, testAccounts, date(2024, time.March, 5, 0, 0))
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Total)
}

func TestBuildDailyDateOnlyTimestamps(t *testing.T) {
	day := date(2024, time.March, 5, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "A", Quantity: "7", Timestamp: "2024-03-05"},
	}

	r := BuildDaily(entries, testAccounts, day)
	require.Len(t, r.Entries, 1)
	assert.Equal(t, 7, r.Total)
}

func TestBuildMonthly(t *testing.T) {
	month := date(2024, time.March, 1, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "A", Quantity: "3", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Bob", Category: "B", Quantity: "8", Timestamp: stamp(date(2024, time.March, 5, 10, 0))},
		{ID: 3, Owner: "Alice", Category: "B", Quantity: "6", Timestamp: stamp(date(2024, time.March, 12, 11, 0))},
		// different month, must not contribute
		{ID: 4, Owner: "Bob", Category: "A", Quantity: "9", Timestamp: stamp(date(2024, time.April, 1, 9, 0))},
	}

	r := BuildMonthly(entries, testAccounts, month)
	require.False(t, r.Empty())
	assert.Equal(t, 17, r.Total)

	require.Len(t, r.Days, 2)
	assert.Equal(t, 5, r.Days[0].Day)
	assert.Equal(t, 12, r.Days[1].Day)
	assert.Equal(t, 11, r.Days[0].Total)

	// within a day owners are ordered by descending subtotal
	require.Len(t, r.Days[0].Owners, 2)
	assert.Equal(t, "Bob", r.Days[0].Owners[0].Owner)
	assert.Equal(t, "Alice", r.Days[0].Owners[1].Owner)

	// monthly owner totals descending
	require.Len(t, r.OwnerTotals, 2)
	assert.Equal(t, OwnerTotal{Owner: "Alice", Quantity: 9}, r.OwnerTotals[0])
	assert.Equal(t, OwnerTotal{Owner: "Bob", Quantity: 8}, r.OwnerTotals[1])

	// monthly category totals descending
	require.Len(t, r.CategoryTotals, 2)
	assert.Equal(t, CategoryTotal{Category: "B", Quantity: 14}, r.CategoryTotals[0])
	assert.Equal(t, CategoryTotal{Category: "A", Quantity: 3}, r.CategoryTotals[1])
}

func TestBuildMonthlyOrderingTies(t *testing.T) {
	month := date(2024, time.March, 1, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Zed", Category: "A", Quantity: "5", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Amy", Category: "B", Quantity: "5", Timestamp: stamp(date(2024, time.March, 5, 10, 0))},
	}

	r := BuildMonthly(entries, nil, month)
	// equal subtotals fall back to name order
	require.Len(t, r.Days, 1)
	assert.Equal(t, "Amy", r.Days[0].Owners[0].Owner)
	assert.Equal(t, "Zed", r.Days[0].Owners[1].Owner)
	assert.Equal(t, "Amy", r.OwnerTotals[0].Owner)
}

func TestRenderDaily(t *testing.T) {
	day := date(2024, time.March, 5, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "Box-12", Quantity: "5", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
	}

	out := BuildDaily(entries, testAccounts, day).RenderDaily()
	assert.Contains(t, out, "2024-03-05")
	assert.Contains(t, out, "Alice:")
	assert.Contains(t, out, "Box-12: 5")
	assert.Contains(t, out, "Grand total (day): 5")
}

func TestRenderMonthly(t *testing.T) {
	month := date(2024, time.March, 1, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "A", Quantity: "3", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Bob", Category: "B", Quantity: "4", Timestamp: stamp(date(2024, time.March, 7, 9, 0))},
	}

	out := BuildMonthly(entries, testAccounts, month).RenderMonthly()
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Day 5")
	assert.Contains(t, out, "Day 7")
	assert.Contains(t, out, "Monthly totals by worker:")
	assert.Contains(t, out, "Grand total (month): 7")
}
