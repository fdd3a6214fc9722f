package calculations

// Summarize считает итоги по графику: сумму выплат и переплату по процентам
func Summarize(req LoanRequest, schedule Schedule) LoanSummary {
	summary := LoanSummary{
		Principal:          req.Principal,
		AnnualRatePercent:  req.AnnualRatePercent,
		DurationYears:      req.DurationYears,
		Months:             len(schedule),
		MonthlyInstallment: MonthlyInstallment(req),
	}

	for _, row := range schedule {
		summary.TotalPaid += row.Installment
		summary.TotalInterest += row.Interest
	}
	if last, ok := schedule.Last(); ok {
		summary.LastInstallment = last.Installment
	}

	return summary
}
