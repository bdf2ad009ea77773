package format

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
)

// WriteSummary prints the headline figures of a simulation
func WriteSummary(w io.Writer, result *calculations.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	average := 0.0
	if len(result.Parcels) > 0 {
		average = result.TotalValue / float64(len(result.Parcels))
	}

	fmt.Fprintf(tw, "Tipo\t%s\n", result.Input.Type.Label())
	fmt.Fprintf(tw, "Valor do Empréstimo\t%s\n", FormatCurrency(result.Input.Principal))
	fmt.Fprintf(tw, "Total a Pagar\t%s\n", FormatCurrency(result.TotalValue))
	fmt.Fprintf(tw, "Total de Juros\t%s (%s)\n", FormatCurrency(result.TotalInterest), FormatPercentage(result.InterestPercentage))
	fmt.Fprintf(tw, "Quantidade\t%dx\n", len(result.Parcels))
	fmt.Fprintf(tw, "Valor Médio\t%s\n", FormatCurrency(average))

	return tw.Flush()
}

// WriteSchedule prints the per-installment table
func WriteSchedule(w io.Writer, result *calculations.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Parc.\tValor\tJuros\tPrincipal\tSaldo\t")
	for _, p := range result.Parcels {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			p.Number,
			FormatCurrency(p.Value),
			FormatCurrency(p.Interest),
			FormatCurrency(p.Principal),
			FormatCurrency(p.Balance),
		)
	}

	return tw.Flush()
}

// WriteComparison prints one line per compared loan type
func WriteComparison(w io.Writer, cmp *calculations.ComparisonResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Principal: %s | Parcelas: %d | Taxa: %s\n\n",
		FormatCurrency(cmp.Principal), cmp.Parcels, FormatPercentage(cmp.Rate))
	fmt.Fprintln(tw, "Tipo\tParcelas\tValor Médio\tTotal a Pagar\tJuros\tDiferença\t")
	for _, e := range cmp.Entries {
		marker := ""
		if e.Type == cmp.Cheapest {
			marker = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%d\t%s\t%s\t%s\t%s\t\n",
			e.Type.Label(), marker,
			e.InstallmentsLen,
			FormatCurrency(e.AverageParcel),
			FormatCurrency(e.Result.TotalValue),
			FormatCurrency(e.Result.TotalInterest),
			FormatCurrency(e.DiffToCheapest),
		)
	}

	return tw.Flush()
}
