package format

import (
	"fmt"
	"strings"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
)

// ShareTitle is the subject used when a summary is handed to another app
const ShareTitle = "Simulação de Empréstimo FINE"

// ShareMessage composes the plain-text summary of a simulation
func ShareMessage(result *calculations.SimulationResult) string {
	var b strings.Builder

	b.WriteString("FINE - Simulador de Empréstimo\n\n")
	b.WriteString(fmt.Sprintf("Tipo: %s\n", result.Input.Type.Label()))
	b.WriteString(fmt.Sprintf("Principal: %s\n", FormatCurrency(result.Input.Principal)))
	b.WriteString(fmt.Sprintf("Parcelas: %d\n", result.Input.Parcels))
	b.WriteString(fmt.Sprintf("Total a Pagar: %s\n", FormatCurrency(result.TotalValue)))
	b.WriteString(fmt.Sprintf("Juros: %s (%s)", FormatCurrency(result.TotalInterest), FormatPercentage(result.InterestPercentage)))

	return b.String()
}
