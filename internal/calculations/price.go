package calculations

// PriceSchedule spreads principal plus a total interest rate evenly across
// the installments. rate is the total percentage charged once on principal.
func PriceSchedule(principal float64, parcels int, rate float64) *SimulationResult {
	n := float64(parcels)
	totalWithInterest := principal * (1 + rate/100)
	parcelValue := totalWithInterest / n
	interest := principal * (rate / 100) / n

	return &SimulationResult{
		Input: SimulationInput{
			Type:      LoanTypePrice,
			Principal: principal,
			Parcels:   parcels,
			Rate:      rate,
		},
		TotalValue:         totalWithInterest,
		TotalInterest:      totalWithInterest - principal,
		InterestPercentage: rate,
		Parcels:            evenSchedule(principal, parcels, parcelValue, interest),
		CreatedAt:          now(),
	}
}
