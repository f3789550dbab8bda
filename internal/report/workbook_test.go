package report

import (
	"bytes"
	"testing"
	"time"

	"factory-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookSheets(t *testing.T) {
	day := date(2024, time.March, 5, 0, 0)
	entries := []*models.ProductionEntry{
		{ID: 1, Owner: "Alice", Category: "A", Quantity: "3", Timestamp: stamp(date(2024, time.March, 5, 9, 0))},
		{ID: 2, Owner: "Bob", Category: "B", Quantity: "4", Timestamp: stamp(date(2024, time.March, 5, 10, 0))},
	}

	b, err := Workbook(BuildDaily(entries, testAccounts, day).DailyTables())
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Raw", "Owner_Category", "Owner_Total", "Category_Total", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Owner_Total")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Owner", "Quantity"}, rows[0])
	assert.Equal(t, []string{"Alice", "3"}, rows[1])
	assert.Equal(t, []string{"Bob", "4"}, rows[2])
}
