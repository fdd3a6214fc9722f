package calculations

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/microlead/loan-amortization/pkg/utils"
)

// MonthlyRate переводит годовую ставку в процентах в месячную десятичную ставку
func MonthlyRate(annualRatePercent decimal.Decimal) float64 {
	return annualRatePercent.InexactFloat64() / 12.0 / 100.0
}

// annuityPayment - выплата по аннуитетной формуле до округления.
// При нулевой ставке или нулевом сроке результат не конечен.
func annuityPayment(req LoanRequest) float64 {
	r := MonthlyRate(req.AnnualRatePercent)
	growth := math.Pow(1.0+r, float64(req.Months()))
	return float64(req.Principal) * (r * growth / (growth - 1.0))
}

// MonthlyInstallment рассчитывает фиксированную ежемесячную выплату (EMI)
// по аннуитетной формуле с округлением до целой единицы.
func MonthlyInstallment(req LoanRequest) int64 {
	return utils.RoundUnit(annuityPayment(req))
}

// Iterator выдает строки графика по одной.
// Проход одноразовый: после последней строки Next всегда возвращает false.
type Iterator struct {
	rate    float64
	emi     int64
	months  int
	month   int
	balance int64
	done    bool
}

// NewIterator проверяет выплату и готовит ленивый обход графика.
// Возвращает *InfeasibleLoanError, если EMI меньше MinInstallment.
func NewIterator(req LoanRequest) (*Iterator, error) {
	payment := annuityPayment(req)
	if !utils.IsFinite(payment) {
		return nil, fmt.Errorf("%w: rate %s, %d months", ErrInvalidRequest, req.AnnualRatePercent, req.Months())
	}

	emi := utils.RoundUnit(payment)
	if emi < MinInstallment {
		return nil, &InfeasibleLoanError{Installment: emi, Minimum: MinInstallment}
	}

	return &Iterator{
		rate:    MonthlyRate(req.AnnualRatePercent),
		emi:     emi,
		months:  req.Months(),
		month:   1,
		balance: req.Principal,
	}, nil
}

// Installment возвращает фиксированную выплату для всех строк, кроме последней
func (it *Iterator) Installment() int64 {
	return it.emi
}

// Next возвращает следующую строку графика.
// Условие окончания проверяется после выдачи строки, поэтому строка выдается хотя бы одна.
func (it *Iterator) Next() (ScheduleRow, bool) {
	if it.done {
		return ScheduleRow{}, false
	}

	opening := it.balance
	installment := it.emi
	interest := utils.RoundUnit(float64(opening) * it.rate)
	principalPortion := installment - interest

	var closing int64
	if installment >= opening || it.month == it.months {
		// последняя строка гасит весь остаток вместе с процентами
		installment = opening + interest
		principalPortion = installment - interest
		closing = 0
	} else {
		closing = opening - principalPortion
	}

	row := ScheduleRow{
		Month:            it.month,
		OpeningBalance:   opening,
		Installment:      installment,
		Interest:         interest,
		PrincipalPortion: principalPortion,
		ClosingBalance:   closing,
	}

	it.month++
	it.balance = closing
	if closing <= 0 {
		it.done = true
	}

	return row, true
}

// ComputeSchedule рассчитывает полный график аннуитетного кредита
func ComputeSchedule(req LoanRequest) (Schedule, error) {
	it, err := NewIterator(req)
	if err != nil {
		return nil, err
	}

	schedule := make(Schedule, 0, req.Months())
	for row, ok := it.Next(); ok; row, ok = it.Next() {
		schedule = append(schedule, row)
	}

	return schedule, nil
}

// AnnuitySchedule рассчитывает график вместе со сводкой
func AnnuitySchedule(req LoanRequest) (*CalculationResult, error) {
	schedule, err := ComputeSchedule(req)
	if err != nil {
		return nil, err
	}

	return &CalculationResult{
		Request:  req,
		Summary:  Summarize(req, schedule),
		Schedule: schedule,
	}, nil
}
