package calculations

import (
	"errors"
	"fmt"
	"time"
)

// LoanType selects the amortization formula
type LoanType string

const (
	LoanTypePrice          LoanType = "price"
	LoanTypeFixedParcel    LoanType = "fixed-parcel"
	LoanTypeInterestOnly   LoanType = "interest-only"
	LoanTypeSimpleInterest LoanType = "simple-interest"
)

var loanTypes = []LoanType{
	LoanTypePrice,
	LoanTypeFixedParcel,
	LoanTypeInterestOnly,
	LoanTypeSimpleInterest,
}

var loanTypeLabels = map[LoanType]string{
	LoanTypePrice:          "PRICE Adaptado",
	LoanTypeFixedParcel:    "Valor da Parcela",
	LoanTypeInterestOnly:   "Apenas Juros",
	LoanTypeSimpleInterest: "Juros Simples",
}

var loanTypeDescriptions = map[LoanType]string{
	LoanTypePrice:          "Juros distribuídos igualmente entre as parcelas. Valor da parcela = (Principal + Juros) / Parcelas",
	LoanTypeFixedParcel:    "Você define o valor fixo de cada parcela. O lucro é a diferença entre o total e o principal.",
	LoanTypeInterestOnly:   "Paga apenas os juros nas parcelas. O principal é quitado em uma transação separada.",
	LoanTypeSimpleInterest: "Juros calculados sobre o valor original. Parcela = (Principal / Parcelas) + Juros",
}

// LoanTypes returns the supported loan types in catalog order
func LoanTypes() []LoanType {
	out := make([]LoanType, len(loanTypes))
	copy(out, loanTypes)
	return out
}

// ParseLoanType converts a tag into a LoanType
func ParseLoanType(s string) (LoanType, error) {
	t := LoanType(s)
	if !t.Valid() {
		return "", &InvalidInputError{Reason: fmt.Sprintf("tipo de empréstimo inválido: %q", s)}
	}
	return t, nil
}

// Valid reports whether t is one of the four known variants
func (t LoanType) Valid() bool {
	_, ok := loanTypeLabels[t]
	return ok
}

// Label returns the display name
func (t LoanType) Label() string {
	if label, ok := loanTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t LoanType) Description() string {
	return loanTypeDescriptions[t]
}

// SimulationInput is the engine's sole argument
type SimulationInput struct {
	Type             LoanType `json:"type" yaml:"type"`
	Principal        float64  `json:"principal" yaml:"principal"`
	Parcels          int      `json:"parcels" yaml:"parcels"`
	Rate             float64  `json:"rate" yaml:"rate"`
	FixedParcelValue *float64 `json:"fixed_parcel_value,omitempty" yaml:"fixed_parcel_value,omitempty"`
}

// InstallmentRecord is one row of the amortization schedule
type InstallmentRecord struct {
	Number    int     `json:"number" yaml:"number"`
	Value     float64 `json:"value" yaml:"value"`
	Interest  float64 `json:"interest" yaml:"interest"`
	Principal float64 `json:"principal" yaml:"principal"`
	Balance   float64 `json:"balance" yaml:"balance"`
}

// SimulationResult is the engine's sole return value
type SimulationResult struct {
	Input              SimulationInput     `json:"input" yaml:"input"`
	TotalValue         float64             `json:"total_value" yaml:"total_value"`
	TotalInterest      float64             `json:"total_interest" yaml:"total_interest"`
	InterestPercentage float64             `json:"interest_percentage" yaml:"interest_percentage"`
	Parcels            []InstallmentRecord `json:"parcels" yaml:"parcels"`
	CreatedAt          time.Time           `json:"created_at" yaml:"created_at"`
}

// ComparisonEntry is one variant inside a comparison
type ComparisonEntry struct {
	Type            LoanType          `json:"type" yaml:"type"`
	Result          *SimulationResult `json:"result" yaml:"result"`
	DiffToCheapest  float64           `json:"diff_to_cheapest" yaml:"diff_to_cheapest"`
	InterestDiff    float64           `json:"interest_diff" yaml:"interest_diff"`
	AverageParcel   float64           `json:"average_parcel" yaml:"average_parcel"`
	InstallmentsLen int               `json:"installments" yaml:"installments"`
}

// ComparisonResult holds the rate-based variants side by side
type ComparisonResult struct {
	Principal float64           `json:"principal" yaml:"principal"`
	Parcels   int               `json:"parcels" yaml:"parcels"`
	Rate      float64           `json:"rate" yaml:"rate"`
	Cheapest  LoanType          `json:"cheapest" yaml:"cheapest"`
	Entries   []ComparisonEntry `json:"entries" yaml:"entries"`
}

// InvalidInputError is returned when the engine cannot build a schedule
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "entrada inválida: " + e.Reason
}

// IsInvalidInput reports whether err is or wraps an InvalidInputError
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
