package service

import "github.com/xuri/excelize/v2"

type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetProfit        float64 `json:"netProfit"`
	TransactionCount int     `json:"transactionCount"`
}

type FinanceService interface {
	Summary(ownerID string) (*Summary, error)
	Report(ownerID string) (*excelize.File, error)
}
