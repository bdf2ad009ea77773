package calculations

// FixedParcelSchedule charges a caller-chosen installment value. The profit is
// whatever the installments add up to beyond principal.
func FixedParcelSchedule(principal float64, parcels int, fixedParcelValue float64) *SimulationResult {
	n := float64(parcels)
	totalValue := fixedParcelValue * n
	totalInterest := totalValue - principal
	interestPercentage := (totalInterest / principal) * 100

	fixed := fixedParcelValue

	return &SimulationResult{
		Input: SimulationInput{
			Type:             LoanTypeFixedParcel,
			Principal:        principal,
			Parcels:          parcels,
			Rate:             interestPercentage,
			FixedParcelValue: &fixed,
		},
		TotalValue:         totalValue,
		TotalInterest:      totalInterest,
		InterestPercentage: interestPercentage,
		Parcels:            evenSchedule(principal, parcels, fixedParcelValue, totalInterest/n),
		CreatedAt:          now(),
	}
}
