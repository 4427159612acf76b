package strategies

import (
	"bytes"

	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
)

var jsonNull = []byte("null")

// decodeProps leaves dst untouched when no properties were sent, so every
// field keeps its default.
func decodeProps(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	return json.Unmarshal(trimmed, dst)
}

func invalidProps(kind string, err error) []model.CalculationMessage {
	return []model.CalculationMessage{
		model.Critical(model.CodeInvalidProperties, "Invalid %s properties: %v", kind, err),
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func checkRateAndHours(payRate, hoursWorked float64) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	if payRate < 0 {
		msgs = append(msgs, model.Warning(model.CodeNegativePayRate, "Pay rate %g is negative", payRate))
	}
	if hoursWorked < 0 {
		msgs = append(msgs, model.Warning(model.CodeNegativeHours, "Hours worked %g is negative", hoursWorked))
	}
	return msgs
}
