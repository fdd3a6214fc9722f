package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/microlead/loan-amortization/internal/calculations"
	"github.com/microlead/loan-amortization/internal/config"
)

// ErrInvalidInput возвращается для любой некорректной строки ввода
var ErrInvalidInput = errors.New("invalid input")

// ValidationError описывает, какое поле не прошло проверку
type ValidationError struct {
	Field   string
	Input   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%q)", e.Field, e.Message, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

var (
	// целое число из цифр, не состоящее только из нулей
	amountPattern = regexp.MustCompile(`^\d+$`)
	allZeros      = regexp.MustCompile(`^0+$`)
	// 1-2 цифры до разделителя (без ведущего нуля) или "0," с дробной частью
	ratePattern     = regexp.MustCompile(`^(?:[1-9]\d?(?:[.,]\d{1,2})?|0[.,]\d{1,2})$`)
	durationPattern = regexp.MustCompile(`^[1-9]\d?$`)
)

// ParseAmount проверяет сумму кредита в целых денежных единицах
func ParseAmount(cfg *config.Config, input string) (int64, error) {
	if !amountPattern.MatchString(input) || allZeros.MatchString(input) {
		return 0, &ValidationError{Field: "amount", Input: input, Message: "expected a positive whole number"}
	}

	amount, err := strconv.ParseInt(input, 10, 64)
	if err != nil || float64(amount) > MaxPrincipal(cfg) {
		return 0, &ValidationError{Field: "amount", Input: input, Message: "value is too large"}
	}
	return amount, nil
}

// ParseRate проверяет годовую номинальную ставку в процентах.
// Допускаются запятая и точка в качестве разделителя.
func ParseRate(input string) (decimal.Decimal, error) {
	if !ratePattern.MatchString(input) {
		return decimal.Zero, &ValidationError{Field: "rate", Input: input, Message: "expected a positive rate with up to 2 decimals"}
	}

	rate, err := decimal.NewFromString(strings.Replace(input, ",", ".", 1))
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "rate", Input: input, Message: "rate must be greater than zero"}
	}
	return rate, nil
}

// ParseDuration проверяет срок кредита в годах (1-99)
func ParseDuration(input string) (int, error) {
	if !durationPattern.MatchString(input) {
		return 0, &ValidationError{Field: "duration", Input: input, Message: "expected 1 to 99 years"}
	}

	years, _ := strconv.Atoi(input)
	return years, nil
}

// ParseChoice разбирает ответ O/N (oui/non) без учета регистра
func ParseChoice(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "O":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, &ValidationError{Field: "choice", Input: input, Message: "expected O or N"}
	}
}

// ParseRequest проверяет все три поля и собирает LoanRequest
func ParseRequest(cfg *config.Config, amount, rate, duration string) (calculations.LoanRequest, error) {
	principal, err := ParseAmount(cfg, amount)
	if err != nil {
		return calculations.LoanRequest{}, err
	}
	annualRate, err := ParseRate(rate)
	if err != nil {
		return calculations.LoanRequest{}, err
	}
	years, err := ParseDuration(duration)
	if err != nil {
		return calculations.LoanRequest{}, err
	}

	return calculations.LoanRequest{
		Principal:         principal,
		AnnualRatePercent: annualRate,
		DurationYears:     years,
	}, nil
}

// MaxPrincipal возвращает максимальную сумму кредита
func MaxPrincipal(cfg *config.Config) float64 {
	if cfg == nil {
		return 1e12 // Значение по умолчанию
	}
	return cfg.MaxPrincipal
}
