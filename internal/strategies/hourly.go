package strategies

import (
	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
	"payroll-engine/internal/pay"
)

type hourlyProps struct {
	PayRate      float64  `json:"pay_rate"`
	HoursWorked  float64  `json:"hours_worked"`
	EmployerCost *float64 `json:"employer_cost"`
}

type HourlyBuilder struct{}

func (b *HourlyBuilder) Validate(props json.RawMessage) []model.CalculationMessage {
	var p hourlyProps
	if err := decodeProps(props, &p); err != nil {
		return invalidProps(TypeHourly, err)
	}
	return checkRateAndHours(p.PayRate, p.HoursWorked)
}

func (b *HourlyBuilder) Build(props json.RawMessage) pay.Contract {
	var p hourlyProps
	_ = decodeProps(props, &p)

	return &pay.HourlyContract{
		PayRate:      p.PayRate,
		HoursWorked:  p.HoursWorked,
		EmployerCost: orDefault(p.EmployerCost, pay.DefaultEmployerCost),
	}
}
