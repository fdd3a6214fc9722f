package calculations

import (
	"errors"
	"fmt"
)

// MinInstallment - минимальная допустимая ежемесячная выплата в денежных единицах
const MinInstallment int64 = 10

// ErrInvalidRequest возвращается, когда аннуитетная формула не дает конечной выплаты
var ErrInvalidRequest = errors.New("annuity payment is not finite")

// ErrInfeasibleLoan возвращается, когда выплата округляется ниже MinInstallment
var ErrInfeasibleLoan = errors.New("infeasible loan")

// InfeasibleLoanError содержит рассчитанную выплату и порог
type InfeasibleLoanError struct {
	Installment int64
	Minimum     int64
}

func (e *InfeasibleLoanError) Error() string {
	return fmt.Sprintf("monthly installment %d is below the minimum of %d", e.Installment, e.Minimum)
}

func (e *InfeasibleLoanError) Unwrap() error {
	return ErrInfeasibleLoan
}
