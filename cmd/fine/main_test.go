package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/fine-loan-simulator/internal/config"
	"github.com/cloud-ru/fine-loan-simulator/internal/session"
	"github.com/cloud-ru/fine-loan-simulator/internal/tools"
)

func newTestApp(t *testing.T, stdin string) (*cli.App, *bytes.Buffer) {
	t.Helper()
	log, _ := test.NewNullLogger()
	registry := tools.Registry(tools.Deps{
		Config: config.Default(),
		Tracer: noop.NewTracerProvider().Tracer("test"),
		Store:  session.NewStore(50),
		Log:    log,
	})

	var out bytes.Buffer
	return newApp(registry, strings.NewReader(stdin), &out), &out
}

func TestSimulateCommand(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.Run([]string{"fine", "simulate", "--type", "price", "--principal", "1000", "--parcels", "2", "--rate", "50", "--share"})
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "PRICE Adaptado")
	require.Contains(t, got, "R$\u00a0750,00")
	require.Contains(t, got, "Simulação de Empréstimo FINE")
	require.Contains(t, got, "Juros: R$\u00a0500,00 (50,00%)")
}

func TestSimulateCommandJSON(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.Run([]string{"fine", "simulate", "-t", "fixed-parcel", "-p", "1000", "-n", "2", "-f", "600", "-o", "json"})
	require.NoError(t, err)
	require.Contains(t, out.String(), `"interest_percentage": 20`)
}

func TestSimulateCommandValidationError(t *testing.T) {
	app, _ := newTestApp(t, "")

	err := app.Run([]string{"fine", "simulate", "--type", "price", "--principal", "0", "--parcels", "40", "--rate", "10"})
	require.Error(t, err)

	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.code)
	require.Contains(t, err.Error(), "--principal")
	require.Contains(t, err.Error(), "--parcels")
}

func TestSimulateCommandBadOutput(t *testing.T) {
	app, _ := newTestApp(t, "")

	err := app.Run([]string{"fine", "simulate", "--type", "price", "--principal", "10", "--rate", "1", "--output", "xml"})
	require.Error(t, err)
	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.code)
}

func TestCompareCommand(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.Run([]string{"fine", "compare", "--principal", "1000", "--parcels", "12", "--rate", "10"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "PRICE Adaptado *")
}

func TestTypesCommand(t *testing.T) {
	app, out := newTestApp(t, "")

	require.NoError(t, app.Run([]string{"fine", "types"}))
	for _, label := range []string{"PRICE Adaptado", "Valor da Parcela", "Apenas Juros", "Juros Simples"} {
		require.Contains(t, out.String(), label)
	}
}

func TestShellSession(t *testing.T) {
	script := strings.Join([]string{
		"share",
		"simulate price 1000 2 50",
		"simulate interest-only 1000 3 10",
		"simulate fixed-parcel 1000 3 500",
		"simulate price 0 2 50",
		"history",
		"show 3",
		"share",
		"clear",
		"history",
		"bogus",
		"quit",
		"simulate price 1 1 1",
	}, "\n")

	app, out := newTestApp(t, script)
	require.NoError(t, app.Run([]string{"fine", "shell"}))

	got := out.String()
	require.Contains(t, got, "erro: nenhuma simulação disponível")
	require.Contains(t, got, "erro: dados inválidos: principal:")
	require.Contains(t, got, " 1. ")
	require.Contains(t, got, " 3. ")
	require.NotContains(t, got, " 4. ")
	require.Contains(t, got, "Tipo: PRICE Adaptado")
	require.Contains(t, got, "3 simulações removidas")
	require.Contains(t, got, "histórico vazio")
	require.Contains(t, got, `comando desconhecido "bogus"`)
	require.NotContains(t, got, "R$\u00a01,01", "input after quit is ignored")
}
