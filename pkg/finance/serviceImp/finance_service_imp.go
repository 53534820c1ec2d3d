package serviceImp

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"farmhub/entities"
	"farmhub/pkg/finance/repository"
	"farmhub/pkg/finance/service"
)

type financeSvc struct{ repo repository.TransactionRepository }

func New(repo repository.TransactionRepository) service.FinanceService {
	return &financeSvc{repo}
}

// Summary scans the owner's transactions and partitions by type.
func (s *financeSvc) Summary(ownerID string) (*service.Summary, error) {
	txs, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	sum := &service.Summary{TransactionCount: len(txs)}
	for _, tx := range txs {
		switch tx.Type {
		case entities.TransactionIncome:
			sum.TotalIncome += tx.Amount
		case entities.TransactionExpense:
			sum.TotalExpenses += tx.Amount
		}
	}
	sum.NetProfit = sum.TotalIncome - sum.TotalExpenses
	return sum, nil
}

const reportSheet = "Transactions"

// Report renders the owner's transactions and their summary as a workbook.
func (s *financeSvc) Report(ownerID string) (*excelize.File, error) {
	txs, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	sum, err := s.Summary(ownerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(reportSheet, "A1", &[]any{"Date", "Type", "Category", "Amount", "Description"}); err != nil {
		return nil, err
	}
	for i, tx := range txs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{tx.Date.Format("2006-01-02"), tx.Type, tx.Category, tx.Amount, tx.Description}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	base := len(txs) + 3
	for i, row := range [][]any{
		{"Total income", sum.TotalIncome},
		{"Total expenses", sum.TotalExpenses},
		{"Net profit", sum.NetProfit},
		{"Transactions", sum.TransactionCount},
	} {
		cell := fmt.Sprintf("A%d", base+i)
		row := row
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
