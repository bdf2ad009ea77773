package validators

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
	"github.com/cloud-ru/fine-loan-simulator/internal/config"
	"github.com/cloud-ru/fine-loan-simulator/pkg/utils"
)

// Form field names, also used as FieldErrors keys
const (
	FieldType             = "type"
	FieldPrincipal        = "principal"
	FieldParcels          = "parcels"
	FieldRate             = "rate"
	FieldFixedParcelValue = "fixed_parcel_value"
)

// RawInput is the simulation form as typed by the user
type RawInput struct {
	Type             string
	Principal        string
	Parcels          string
	Rate             string
	FixedParcelValue string
}

// FieldErrors maps a form field to the message shown next to it
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "dados inválidos: " + strings.Join(parts, "; ")
}

// ParseInput validates the form and builds the engine input. All field
// failures are reported together.
func ParseInput(cfg *config.Config, raw RawInput) (calculations.SimulationInput, error) {
	errs := FieldErrors{}

	loanType, err := calculations.ParseLoanType(strings.TrimSpace(raw.Type))
	if err != nil {
		errs[FieldType] = "Tipo de empréstimo inválido"
	}

	principal, ok := parseFloat(raw.Principal)
	if !ok || CheckPrincipal(cfg, principal) != nil {
		errs[FieldPrincipal] = "Valor do empréstimo deve ser maior que 0"
	}

	parcels, err := strconv.Atoi(strings.TrimSpace(raw.Parcels))
	if err != nil || CheckParcels(cfg, parcels) != nil {
		errs[FieldParcels] = "Parcelas deve estar entre 1 e " + strconv.Itoa(cfg.MaxParcels)
	}

	input := calculations.SimulationInput{
		Type:      loanType,
		Principal: principal,
		Parcels:   parcels,
	}

	if loanType == calculations.LoanTypeFixedParcel {
		fixed, ok := parseFloat(raw.FixedParcelValue)
		switch {
		case !ok || !(fixed > 0):
			errs[FieldFixedParcelValue] = "Valor da parcela deve ser maior que 0"
		case CheckFixedParcel(principal, parcels, fixed) != nil:
			errs[FieldFixedParcelValue] = "Total das parcelas deve ser maior que o principal"
		}
		input.FixedParcelValue = &fixed
		// the rate field is ignored for this type
		if rate, ok := parseFloat(raw.Rate); ok {
			input.Rate = rate
		}
	} else if loanType.Valid() {
		rate, ok := parseFloat(raw.Rate)
		if !ok || CheckRate(cfg, rate) != nil {
			errs[FieldRate] = "Taxa deve estar entre 0 e " + strconv.FormatFloat(cfg.MaxRate, 'f', -1, 64) + "%"
		}
		input.Rate = rate
	}

	if len(errs) > 0 {
		return calculations.SimulationInput{}, errs
	}
	return input, nil
}

func parseFloat(s string) (float64, bool) {
	s = utils.NormalizeDecimal(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !utils.IsFinite(v) {
		return 0, false
	}
	return v, true
}
