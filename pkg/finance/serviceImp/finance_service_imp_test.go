package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/finance/repository"
	"farmhub/pkg/finance/repositoryImp"
)

func seed(t *testing.T) repository.TransactionRepository {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	repo := repositoryImp.New(db)
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, tx := range []entities.Transaction{
		{OwnerID: "A", Type: "income", Category: "harvest", Amount: 100, Date: date},
		{OwnerID: "A", Type: "income", Category: "subsidy", Amount: 50, Date: date},
		{OwnerID: "A", Type: "expense", Category: "fuel", Amount: 30, Date: date},
		{OwnerID: "B", Type: "income", Category: "harvest", Amount: 999, Date: date},
	} {
		tx := tx
		require.NoError(t, repo.Create(&tx))
	}
	return repo
}

func TestSummary(t *testing.T) {
	svc := New(seed(t))

	sum, err := svc.Summary("A")
	require.NoError(t, err)
	assert.Equal(t, 150.0, sum.TotalIncome)
	assert.Equal(t, 30.0, sum.TotalExpenses)
	assert.Equal(t, 120.0, sum.NetProfit)
	assert.Equal(t, 3, sum.TransactionCount)
}

func TestSummary_EmptyOwner(t *testing.T) {
	svc := New(seed(t))

	sum, err := svc.Summary("nobody")
	require.NoError(t, err)
	assert.Zero(t, sum.TotalIncome)
	assert.Zero(t, sum.TotalExpenses)
	assert.Zero(t, sum.NetProfit)
	assert.Zero(t, sum.TransactionCount)
}

func TestReport(t *testing.T) {
	svc := New(seed(t))

	f, err := svc.Report("A")
	require.NoError(t, err)

	head, err := f.GetCellValue(reportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", head)

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	// header + 3 transactions + blank + 4 summary rows
	require.GreaterOrEqual(t, len(rows), 8)

	// only owner A's transactions appear
	for _, row := range rows {
		for _, cell := range row {
			assert.NotEqual(t, "999", cell)
		}
	}
}
