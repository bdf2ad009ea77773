package calculations

// SimpleInterestSchedule charges rate percent of the original principal every
// period while amortizing principal evenly.
//
//	parcel = principal/parcels + principal*rate/100
func SimpleInterestSchedule(principal float64, parcels int, rate float64) *SimulationResult {
	n := float64(parcels)
	principalPerParcel := principal / n
	interestPerParcel := (principal * rate) / 100
	parcelValue := principalPerParcel + interestPerParcel
	totalInterest := interestPerParcel * n
	totalValue := principal + totalInterest

	return &SimulationResult{
		Input: SimulationInput{
			Type:      LoanTypeSimpleInterest,
			Principal: principal,
			Parcels:   parcels,
			Rate:      rate,
		},
		TotalValue:         totalValue,
		TotalInterest:      totalInterest,
		InterestPercentage: (totalInterest / principal) * 100,
		Parcels:            evenSchedule(principal, parcels, parcelValue, interestPerParcel),
		CreatedAt:          now(),
	}
}
