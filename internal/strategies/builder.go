package strategies

import (
	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
	"payroll-engine/internal/pay"
)

// ContractBuilder turns the properties of a named contract type into a pay.Contract.
// Callers must run Validate first and only call Build when it returned no
// critical message. Build ignores decode errors on that basis.
type ContractBuilder interface {
	Validate(props json.RawMessage) []model.CalculationMessage
	Build(props json.RawMessage) pay.Contract
}

// CommissionBuilder is the commission counterpart of ContractBuilder, with the
// same Validate-before-Build rule.
type CommissionBuilder interface {
	Validate(props json.RawMessage) []model.CalculationMessage
	Build(props json.RawMessage) pay.Commission
}
