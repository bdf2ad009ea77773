package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
	"github.com/cloud-ru/fine-loan-simulator/internal/config"
	"github.com/cloud-ru/fine-loan-simulator/internal/format"
	"github.com/cloud-ru/fine-loan-simulator/internal/metrics"
	"github.com/cloud-ru/fine-loan-simulator/internal/session"
	"github.com/cloud-ru/fine-loan-simulator/internal/validators"
)

// ToolHandler is one operation exposed to the presentation layer
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Deps are shared by every handler
type Deps struct {
	Config *config.Config
	Tracer trace.Tracer
	Store  *session.Store
	Log    logrus.FieldLogger
}

// ShareResult is what ShareHandler returns
type ShareResult struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// Registry returns every handler keyed by tool name
func Registry(d Deps) map[string]ToolHandler {
	return map[string]ToolHandler{
		"simulate":      SimulateHandler(d),
		"compare":       CompareHandler(d),
		"history":       HistoryHandler(d),
		"select":        SelectHandler(d),
		"share":         ShareHandler(d),
		"clear_history": ClearHistoryHandler(d),
	}
}

// SimulateHandler validates the form fields in params, runs the engine and
// stores the result as the current simulation
func SimulateHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "simulate"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		raw := validators.RawInput{
			Type:             stringParam(params, validators.FieldType),
			Principal:        stringParam(params, validators.FieldPrincipal),
			Parcels:          stringParam(params, validators.FieldParcels),
			Rate:             stringParam(params, validators.FieldRate),
			FixedParcelValue: stringParam(params, validators.FieldFixedParcelValue),
		}
		span.SetAttributes(
			attribute.String("loan_type", raw.Type),
			attribute.String("principal", raw.Principal),
			attribute.String("parcels", raw.Parcels),
		)

		input, err := validators.ParseInput(d.Config, raw)
		if err != nil {
			fail(span, d.Log, toolName, "validation", err)
			return nil, err
		}

		result, err := calculations.Calculate(input)
		if err != nil {
			fail(span, d.Log, toolName, "calculation", err)
			return nil, fmt.Errorf("erro ao calcular simulação: %w", err)
		}

		entry := d.Store.Add(result)
		metrics.HistorySize.Set(float64(d.Store.Len()))
		metrics.Simulations.WithLabelValues(string(input.Type)).Inc()
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("simulation_id", entry.ID),
			attribute.Float64("total_value", result.TotalValue),
			attribute.Int("installments", len(result.Parcels)),
		)
		d.Log.WithFields(logrus.Fields{
			"id":          entry.ID,
			"loan_type":   input.Type,
			"principal":   input.Principal,
			"total_value": result.TotalValue,
		}).Info("simulation calculated")

		return result, nil
	}
}

// CompareHandler runs every rate-based loan type on the same parameters
func CompareHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "compare"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		// price is only used to reuse the rate-based form validation
		raw := validators.RawInput{
			Type:      string(calculations.LoanTypePrice),
			Principal: stringParam(params, validators.FieldPrincipal),
			Parcels:   stringParam(params, validators.FieldParcels),
			Rate:      stringParam(params, validators.FieldRate),
		}

		input, err := validators.ParseInput(d.Config, raw)
		if err != nil {
			fail(span, d.Log, toolName, "validation", err)
			return nil, err
		}

		result, err := calculations.CompareLoanTypes(input.Principal, input.Parcels, input.Rate)
		if err != nil {
			fail(span, d.Log, toolName, "calculation", err)
			return nil, fmt.Errorf("erro ao comparar simulações: %w", err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("cheapest", string(result.Cheapest)),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		d.Log.WithField("cheapest", result.Cheapest).Debug("comparison calculated")

		return result, nil
	}
}

// HistoryHandler lists the session history, newest first
func HistoryHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "history"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		history := d.Store.History()
		span.SetAttributes(attribute.Int("entries", len(history)))
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		return history, nil
	}
}

// SelectHandler makes a history entry current again. The "index" param is
// 1-based, newest first; "id" selects by entry ID.
func SelectHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "select"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		var (
			entry session.Entry
			found bool
		)
		if id := stringParam(params, "id"); id != "" {
			entry, found = d.Store.Get(id)
		} else {
			history := d.Store.History()
			idx, err := strconv.Atoi(stringParam(params, "index"))
			if err == nil && idx >= 1 && idx <= len(history) {
				entry, found = history[idx-1], true
			}
		}

		if !found {
			err := fmt.Errorf("simulação não encontrada no histórico")
			fail(span, d.Log, toolName, "not_found", err)
			return nil, err
		}

		d.Store.SetCurrent(entry.Result)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		return entry.Result, nil
	}
}

// ShareHandler composes the share text of the current simulation
func ShareHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "share"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		current, ok := d.Store.Current()
		if !ok {
			err := fmt.Errorf("nenhuma simulação disponível")
			fail(span, d.Log, toolName, "no_simulation", err)
			return nil, err
		}

		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		return ShareResult{
			Title:   format.ShareTitle,
			Message: format.ShareMessage(current),
		}, nil
	}
}

// ClearHistoryHandler drops the history and the current simulation
func ClearHistoryHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "clear_history"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		removed := d.Store.Len()
		d.Store.Clear()
		metrics.HistorySize.Set(0)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		span.SetAttributes(attribute.Int("removed", removed))
		d.Log.WithField("removed", removed).Info("history cleared")

		return removed, nil
	}
}

func fail(span trace.Span, log logrus.FieldLogger, toolName, errorType string, err error) {
	span.SetAttributes(attribute.String("error", errorType))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, errorType+"_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
	log.WithFields(logrus.Fields{"tool": toolName, "error_type": errorType}).WithError(err).Warn("tool call failed")
}

// stringParam reads a form field as text; numbers are accepted too since
// JSON-decoded params carry them as float64
func stringParam(params map[string]interface{}, key string) string {
	switch v := params[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}
