package validators

import (
	"fmt"

	"github.com/cloud-ru/fine-loan-simulator/internal/config"
	"github.com/cloud-ru/fine-loan-simulator/pkg/utils"
)

// ValidatePositiveNumber checks that value is finite and within [min, max]
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: valor não é um número finito", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: valor deve ser ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: valor muito alto (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange checks that value is within [min, max]
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: valor deve estar entre %d e %d", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal requires a positive loan amount
func CheckPrincipal(cfg *config.Config, principal float64) error {
	if err := ValidatePositiveNumber("principal", principal, 0, cfg.MaxPrincipal); err != nil {
		return err
	}
	if principal <= 0 {
		return fmt.Errorf("principal: valor do empréstimo deve ser maior que 0")
	}
	return nil
}

// CheckParcels requires 1..MaxParcels installments
func CheckParcels(cfg *config.Config, parcels int) error {
	return ValidateIntRange("parcels", parcels, 1, cfg.MaxParcels)
}

// CheckRate requires a rate between 0 and MaxRate percent
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("rate", rate, 0, cfg.MaxRate)
}

// CheckFixedParcel requires a positive installment whose total covers principal
func CheckFixedParcel(principal float64, parcels int, fixedParcelValue float64) error {
	if !utils.IsFinite(fixedParcelValue) || fixedParcelValue <= 0 {
		return fmt.Errorf("fixed_parcel_value: valor da parcela deve ser maior que 0")
	}
	if fixedParcelValue*float64(parcels) < principal {
		return fmt.Errorf("fixed_parcel_value: total das parcelas deve ser maior que o principal")
	}
	return nil
}
