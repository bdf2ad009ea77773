package calculations

// InterestOnlySchedule renews the debt each period: every installment pays
// rate percent of the original principal and the principal itself is settled
// by one extra amortization record numbered parcels+1.
func InterestOnlySchedule(principal float64, parcels int, rate float64) *SimulationResult {
	monthlyInterest := (principal * rate) / 100
	totalInterest := monthlyInterest * float64(parcels)
	totalValue := principal + totalInterest

	schedule := make([]InstallmentRecord, 0, parcels+1)
	for i := 1; i <= parcels; i++ {
		schedule = append(schedule, InstallmentRecord{
			Number:    i,
			Value:     monthlyInterest,
			Interest:  monthlyInterest,
			Principal: 0,
			Balance:   principal,
		})
	}

	schedule = append(schedule, InstallmentRecord{
		Number:    parcels + 1,
		Value:     principal,
		Interest:  0,
		Principal: principal,
		Balance:   0,
	})

	return &SimulationResult{
		Input: SimulationInput{
			Type:      LoanTypeInterestOnly,
			Principal: principal,
			// includes the amortization record
			Parcels: parcels + 1,
			Rate:    rate,
		},
		TotalValue:         totalValue,
		TotalInterest:      totalInterest,
		InterestPercentage: (totalInterest / principal) * 100,
		Parcels:            schedule,
		CreatedAt:          now(),
	}
}
