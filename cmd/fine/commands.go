package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
	"github.com/cloud-ru/fine-loan-simulator/internal/format"
	"github.com/cloud-ru/fine-loan-simulator/internal/tools"
	"github.com/cloud-ru/fine-loan-simulator/internal/validators"
)

var (
	typeFlag        = cli.StringFlag{Name: "type, t", Usage: "loan type: price, fixed-parcel, interest-only, simple-interest"}
	principalFlag   = cli.StringFlag{Name: "principal, p", Usage: "loan amount in R$ (1000.50 or 1.000,50)"}
	parcelsFlag     = cli.StringFlag{Name: "parcels, n", Value: "12", Usage: "number of installments"}
	rateFlag        = cli.StringFlag{Name: "rate, r", Usage: "interest rate in percent"}
	fixedParcelFlag = cli.StringFlag{Name: "fixed-parcel, f", Usage: "installment value for fixed-parcel loans"}
	outputFlag      = cli.StringFlag{Name: "output, o", Value: "table", Usage: "table, json or yaml"}
	shareFlag       = cli.BoolFlag{Name: "share", Usage: "print the share message after the result"}
)

func newApp(registry map[string]tools.ToolHandler, in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "fine"
	app.Usage = "FINE - Simulador de Empréstimo"
	app.Version = "1.0.0"
	app.Writer = out

	app.Commands = []cli.Command{
		{
			Name:  "types",
			Usage: "list the loan types",
			Action: func(c *cli.Context) error {
				writeTypes(out)
				return nil
			},
		},
		{
			Name:  "simulate",
			Usage: "simulate one loan and print its installments",
			Flags: []cli.Flag{typeFlag, principalFlag, parcelsFlag, rateFlag, fixedParcelFlag, outputFlag, shareFlag},
			Action: func(c *cli.Context) error {
				enc, err := format.ParseEncoding(c.String("output"))
				if err != nil {
					return &exitCodeError{msg: err.Error(), code: 2}
				}

				res, err := registry["simulate"](context.Background(), map[string]interface{}{
					validators.FieldType:             c.String("type"),
					validators.FieldPrincipal:        c.String("principal"),
					validators.FieldParcels:          c.String("parcels"),
					validators.FieldRate:             c.String("rate"),
					validators.FieldFixedParcelValue: c.String("fixed-parcel"),
				})
				if err != nil {
					return exitError(err)
				}

				if err := format.Encode(out, res.(*calculations.SimulationResult), enc); err != nil {
					return err
				}
				if c.Bool("share") {
					return printShare(context.Background(), registry, out)
				}
				return nil
			},
		},
		{
			Name:  "compare",
			Usage: "compare the rate-based loan types for the same principal, parcels and rate",
			Flags: []cli.Flag{principalFlag, parcelsFlag, rateFlag, outputFlag},
			Action: func(c *cli.Context) error {
				enc, err := format.ParseEncoding(c.String("output"))
				if err != nil {
					return &exitCodeError{msg: err.Error(), code: 2}
				}

				res, err := registry["compare"](context.Background(), map[string]interface{}{
					validators.FieldPrincipal: c.String("principal"),
					validators.FieldParcels:   c.String("parcels"),
					validators.FieldRate:      c.String("rate"),
				})
				if err != nil {
					return exitError(err)
				}
				return format.EncodeComparison(out, res.(*calculations.ComparisonResult), enc)
			},
		},
		{
			Name:  "shell",
			Usage: "run simulations interactively, keeping a session history",
			Action: func(c *cli.Context) error {
				return runShell(context.Background(), registry, in, out)
			},
		},
	}

	return app
}

func writeTypes(w io.Writer) {
	for _, t := range calculations.LoanTypes() {
		fmt.Fprintf(w, "%-16s %s\n", t, t.Label())
		fmt.Fprintf(w, "%-16s %s\n", "", t.Description())
	}
}

func printShare(ctx context.Context, registry map[string]tools.ToolHandler, out io.Writer) error {
	res, err := registry["share"](ctx, nil)
	if err != nil {
		return err
	}
	share := res.(tools.ShareResult)
	_, err = fmt.Fprintf(out, "\n%s\n\n%s\n", share.Title, share.Message)
	return err
}

// exitCodeError carries the process exit code back to run(). It does not
// implement cli.ExitCoder, so the cli package never calls os.Exit itself.
type exitCodeError struct {
	msg  string
	code int
}

func (e *exitCodeError) Error() string { return e.msg }

// exitError turns validation failures into a readable list and exit code 1
func exitError(err error) error {
	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		msg := "Erro de validação:"
		for _, field := range []string{
			validators.FieldType,
			validators.FieldPrincipal,
			validators.FieldParcels,
			validators.FieldRate,
			validators.FieldFixedParcelValue,
		} {
			if m, ok := fieldErrs[field]; ok {
				msg += fmt.Sprintf("\n  --%s: %s", flagName(field), m)
			}
		}
		return &exitCodeError{msg: msg, code: 1}
	}
	return &exitCodeError{msg: err.Error(), code: 1}
}

func flagName(field string) string {
	if field == validators.FieldFixedParcelValue {
		return "fixed-parcel"
	}
	return field
}
