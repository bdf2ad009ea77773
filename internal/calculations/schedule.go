package calculations

// remainingBalance returns the outstanding principal after installment i of n
// when every installment amortizes perParcel. The result is clamped at zero
// and the last installment always closes the loan.
func remainingBalance(principal, perParcel float64, i, n int) float64 {
	if i >= n {
		return 0
	}
	balance := principal - float64(i)*perParcel
	if balance < 0 {
		return 0
	}
	return balance
}

// evenSchedule builds n identical installments that amortize principal linearly
func evenSchedule(principal float64, n int, value, interest float64) []InstallmentRecord {
	perParcel := principal / float64(n)
	schedule := make([]InstallmentRecord, 0, n)

	for i := 1; i <= n; i++ {
		schedule = append(schedule, InstallmentRecord{
			Number:    i,
			Value:     value,
			Interest:  interest,
			Principal: perParcel,
			Balance:   remainingBalance(principal, perParcel, i, n),
		})
	}

	return schedule
}
