package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
)

func priceResult(t *testing.T) *calculations.SimulationResult {
	t.Helper()
	result, err := calculations.Calculate(calculations.SimulationInput{
		Type:      calculations.LoanTypePrice,
		Principal: 1000,
		Parcels:   2,
		Rate:      50,
	})
	require.NoError(t, err)
	return result
}

func TestShareMessage(t *testing.T) {
	msg := ShareMessage(priceResult(t))

	want := "FINE - Simulador de Empréstimo\n\n" +
		"Tipo: PRICE Adaptado\n" +
		"Principal: R$\u00a01.000,00\n" +
		"Parcelas: 2\n" +
		"Total a Pagar: R$\u00a01.500,00\n" +
		"Juros: R$\u00a0500,00 (50,00%)"
	require.Equal(t, want, msg)
}

func TestShareMessageInterestOnlyCountsAmortization(t *testing.T) {
	result, err := calculations.Calculate(calculations.SimulationInput{
		Type:      calculations.LoanTypeInterestOnly,
		Principal: 1000,
		Parcels:   3,
		Rate:      10,
	})
	require.NoError(t, err)

	msg := ShareMessage(result)
	require.Contains(t, msg, "Tipo: Apenas Juros\n")
	require.Contains(t, msg, "Parcelas: 4\n")
	require.Contains(t, msg, "(30,00%)")
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, priceResult(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Parc.")
	require.Contains(t, lines[0], "Saldo")
	require.Contains(t, lines[1], "R$\u00a0750,00")
	require.Contains(t, lines[1], "R$\u00a0250,00")
	require.Contains(t, lines[1], "R$\u00a0500,00")
	require.Contains(t, lines[2], "R$\u00a00,00")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, priceResult(t)))

	out := buf.String()
	require.Contains(t, out, "PRICE Adaptado")
	require.Contains(t, out, "2x")
	require.Contains(t, out, "Valor Médio")
	require.Contains(t, out, "R$\u00a0750,00")
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, priceResult(t), EncodingJSON))

	var decoded calculations.SimulationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, 1500.0, decoded.TotalValue)
	require.Len(t, decoded.Parcels, 2)
	require.Nil(t, decoded.Input.FixedParcelValue)
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, priceResult(t), EncodingYAML))
	require.Contains(t, buf.String(), "total_interest: 500")

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Contains(t, decoded, "parcels")
}

func TestParseEncoding(t *testing.T) {
	enc, err := ParseEncoding("")
	require.NoError(t, err)
	require.Equal(t, EncodingTable, enc)

	enc, err = ParseEncoding("yaml")
	require.NoError(t, err)
	require.Equal(t, EncodingYAML, enc)

	_, err = ParseEncoding("xml")
	require.Error(t, err)
}

func TestEncodeComparison(t *testing.T) {
	cmp, err := calculations.CompareLoanTypes(1000, 12, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeComparison(&buf, cmp, EncodingTable))
	require.Contains(t, buf.String(), "PRICE Adaptado *")
	require.Contains(t, buf.String(), "Juros Simples")
}
