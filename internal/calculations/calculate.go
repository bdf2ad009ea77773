package calculations

import (
	"fmt"
	"time"
)

// now stamps CreatedAt; tests replace it to get stable results
var now = time.Now

// Calculate builds the amortization schedule for input.Type.
//
// Range checks on principal, parcels and rate belong to the caller; the only
// precondition enforced here is a positive FixedParcelValue for fixed-parcel
// loans. See Validate for the stricter guard.
func Calculate(input SimulationInput) (*SimulationResult, error) {
	switch input.Type {
	case LoanTypePrice:
		return PriceSchedule(input.Principal, input.Parcels, input.Rate), nil

	case LoanTypeFixedParcel:
		if input.FixedParcelValue == nil || *input.FixedParcelValue <= 0 {
			return nil, &InvalidInputError{Reason: "valor da parcela é obrigatório para este tipo"}
		}
		return FixedParcelSchedule(input.Principal, input.Parcels, *input.FixedParcelValue), nil

	case LoanTypeInterestOnly:
		return InterestOnlySchedule(input.Principal, input.Parcels, input.Rate), nil

	case LoanTypeSimpleInterest:
		return SimpleInterestSchedule(input.Principal, input.Parcels, input.Rate), nil

	default:
		return nil, &InvalidInputError{Reason: fmt.Sprintf("tipo de empréstimo inválido: %q", input.Type)}
	}
}

// Validate rejects inputs the formulas are not defined for. Calculate does
// not call it.
func Validate(input SimulationInput) error {
	if !input.Type.Valid() {
		return &InvalidInputError{Reason: fmt.Sprintf("tipo de empréstimo inválido: %q", input.Type)}
	}
	if !(input.Principal > 0) {
		return &InvalidInputError{Reason: "valor do empréstimo deve ser maior que 0"}
	}
	if input.Parcels < 1 {
		return &InvalidInputError{Reason: "quantidade de parcelas deve ser pelo menos 1"}
	}
	if input.Type == LoanTypeFixedParcel {
		if input.FixedParcelValue == nil || *input.FixedParcelValue <= 0 {
			return &InvalidInputError{Reason: "valor da parcela é obrigatório para este tipo"}
		}
		if *input.FixedParcelValue*float64(input.Parcels) < input.Principal {
			return &InvalidInputError{Reason: "total das parcelas deve ser maior que o principal"}
		}
		return nil
	}
	if input.Rate < 0 {
		return &InvalidInputError{Reason: "taxa não pode ser negativa"}
	}
	return nil
}

// CalculateStrict runs Validate before Calculate
func CalculateStrict(input SimulationInput) (*SimulationResult, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	return Calculate(input)
}
