package strategies

import (
	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
	"payroll-engine/internal/pay"
)

type salariedProps struct {
	MonthlySalary float64  `json:"monthly_salary"`
	Percentage    *float64 `json:"percentage"`
}

type SalariedBuilder struct{}

// Validate only checks the shape. Percentage is not range-checked since
// there is no agreed rule for values outside [0, 1].
func (b *SalariedBuilder) Validate(props json.RawMessage) []model.CalculationMessage {
	var p salariedProps
	if err := decodeProps(props, &p); err != nil {
		return invalidProps(TypeSalaried, err)
	}
	return nil
}

func (b *SalariedBuilder) Build(props json.RawMessage) pay.Contract {
	var p salariedProps
	_ = decodeProps(props, &p)

	return &pay.SalariedContract{
		MonthlySalary: p.MonthlySalary,
		Percentage:    orDefault(p.Percentage, pay.DefaultPercentage),
	}
}
