package calculations

import (
	"github.com/cloud-ru/fine-loan-simulator/pkg/utils"
)

// rateBasedTypes are the variants that take a rate instead of a fixed value
var rateBasedTypes = []LoanType{
	LoanTypePrice,
	LoanTypeInterestOnly,
	LoanTypeSimpleInterest,
}

// CompareLoanTypes runs every rate-based variant on the same principal,
// parcels and rate and ranks them by total amount paid
func CompareLoanTypes(principal float64, parcels int, rate float64) (*ComparisonResult, error) {
	entries := make([]ComparisonEntry, 0, len(rateBasedTypes))

	for _, t := range rateBasedTypes {
		result, err := Calculate(SimulationInput{
			Type:      t,
			Principal: principal,
			Parcels:   parcels,
			Rate:      rate,
		})
		if err != nil {
			return nil, err
		}

		entries = append(entries, ComparisonEntry{
			Type:            t,
			Result:          result,
			AverageParcel:   result.TotalValue / float64(len(result.Parcels)),
			InstallmentsLen: len(result.Parcels),
		})
	}

	// first lowest total wins ties, keeping catalog order
	cheapest := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].Result.TotalValue < entries[cheapest].Result.TotalValue {
			cheapest = i
		}
	}

	best := entries[cheapest].Result
	for i := range entries {
		entries[i].DiffToCheapest = utils.Round2(entries[i].Result.TotalValue - best.TotalValue)
		entries[i].InterestDiff = utils.Round2(entries[i].Result.TotalInterest - best.TotalInterest)
	}

	return &ComparisonResult{
		Principal: principal,
		Parcels:   parcels,
		Rate:      rate,
		Cheapest:  entries[cheapest].Type,
		Entries:   entries,
	}, nil
}
