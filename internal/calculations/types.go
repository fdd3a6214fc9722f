package calculations

import "github.com/shopspring/decimal"

// LoanRequest содержит проверенные параметры кредита
type LoanRequest struct {
	Principal         int64           `json:"principal" yaml:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	DurationYears     int             `json:"duration_years" yaml:"duration_years"`
}

// Months возвращает количество запланированных платежей
func (r LoanRequest) Months() int {
	return r.DurationYears * 12
}

// ScheduleRow представляет одну строку графика платежей.
// Installment = Interest + PrincipalPortion для каждой строки.
type ScheduleRow struct {
	Month            int   `json:"month" yaml:"month"`
	OpeningBalance   int64 `json:"opening_balance" yaml:"opening_balance"`
	Installment      int64 `json:"installment" yaml:"installment"`
	Interest         int64 `json:"interest" yaml:"interest"`
	PrincipalPortion int64 `json:"principal_portion" yaml:"principal_portion"`
	ClosingBalance   int64 `json:"closing_balance" yaml:"closing_balance"`
}

// Schedule - упорядоченный график платежей, месяцы начинаются с 1
type Schedule []ScheduleRow

// Last возвращает последнюю строку графика
func (s Schedule) Last() (ScheduleRow, bool) {
	if len(s) == 0 {
		return ScheduleRow{}, false
	}
	return s[len(s)-1], true
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal          int64           `json:"principal" yaml:"principal"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	DurationYears      int             `json:"duration_years" yaml:"duration_years"`
	Months             int             `json:"months" yaml:"months"`
	MonthlyInstallment int64           `json:"monthly_installment" yaml:"monthly_installment"`
	LastInstallment    int64           `json:"last_installment" yaml:"last_installment"`
	TotalPaid          int64           `json:"total_paid" yaml:"total_paid"`
	TotalInterest      int64           `json:"total_interest" yaml:"total_interest"`
}

// CalculationResult представляет результат расчета кредита
type CalculationResult struct {
	Request  LoanRequest `json:"request" yaml:"request"`
	Summary  LoanSummary `json:"summary" yaml:"summary"`
	Schedule Schedule    `json:"schedule" yaml:"schedule"`
}
