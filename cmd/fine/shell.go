package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
	"github.com/cloud-ru/fine-loan-simulator/internal/format"
	"github.com/cloud-ru/fine-loan-simulator/internal/session"
	"github.com/cloud-ru/fine-loan-simulator/internal/tools"
	"github.com/cloud-ru/fine-loan-simulator/internal/validators"
)

const shellHelp = `comandos:
  simulate <tipo> <principal> <parcelas> <taxa|valor da parcela>
  compare <principal> <parcelas> <taxa>
  history              lista as últimas simulações
  show <n>             mostra a simulação n do histórico
  share                texto para compartilhar a simulação atual
  clear                limpa o histórico
  types                tipos de empréstimo
  quit`

// runShell reads one command per line until EOF or quit. Command failures
// are printed and the session continues.
func runShell(ctx context.Context, registry map[string]tools.ToolHandler, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "FINE - Simulador de Empréstimo (help para ajuda)")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}

		if err := shellCommand(ctx, registry, out, cmd, args); err != nil {
			fmt.Fprintf(out, "erro: %v\n", err)
		}
	}
}

func shellCommand(ctx context.Context, registry map[string]tools.ToolHandler, out io.Writer, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(out, shellHelp)
		return nil

	case "types":
		writeTypes(out)
		return nil

	case "simulate":
		if len(args) != 4 {
			return fmt.Errorf("uso: simulate <tipo> <principal> <parcelas> <taxa|valor da parcela>")
		}
		params := map[string]interface{}{
			validators.FieldType:      args[0],
			validators.FieldPrincipal: args[1],
			validators.FieldParcels:   args[2],
		}
		if args[0] == string(calculations.LoanTypeFixedParcel) {
			params[validators.FieldFixedParcelValue] = args[3]
		} else {
			params[validators.FieldRate] = args[3]
		}

		res, err := registry["simulate"](ctx, params)
		if err != nil {
			return err
		}
		return format.Encode(out, res.(*calculations.SimulationResult), format.EncodingTable)

	case "compare":
		if len(args) != 3 {
			return fmt.Errorf("uso: compare <principal> <parcelas> <taxa>")
		}
		res, err := registry["compare"](ctx, map[string]interface{}{
			validators.FieldPrincipal: args[0],
			validators.FieldParcels:   args[1],
			validators.FieldRate:      args[2],
		})
		if err != nil {
			return err
		}
		return format.WriteComparison(out, res.(*calculations.ComparisonResult))

	case "history":
		res, err := registry["history"](ctx, nil)
		if err != nil {
			return err
		}
		history := res.([]session.Entry)
		if len(history) == 0 {
			fmt.Fprintln(out, "histórico vazio")
			return nil
		}
		for i, e := range history {
			fmt.Fprintf(out, "%2d. %s  %-16s %s em %dx, total %s\n",
				i+1,
				e.Timestamp.Format("15:04:05"),
				e.Result.Input.Type.Label(),
				format.FormatCurrency(e.Result.Input.Principal),
				len(e.Result.Parcels),
				format.FormatCurrency(e.Result.TotalValue),
			)
		}
		return nil

	case "show":
		if len(args) != 1 {
			return fmt.Errorf("uso: show <n>")
		}
		res, err := registry["select"](ctx, map[string]interface{}{"index": args[0]})
		if err != nil {
			return err
		}
		return format.Encode(out, res.(*calculations.SimulationResult), format.EncodingTable)

	case "share":
		return printShare(ctx, registry, out)

	case "clear":
		res, err := registry["clear_history"](ctx, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d simulações removidas\n", res.(int))
		return nil

	default:
		return fmt.Errorf("comando desconhecido %q (help para ajuda)", cmd)
	}
}
