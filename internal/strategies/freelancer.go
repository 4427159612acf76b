package strategies

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
	"payroll-engine/internal/pay"
)

type freelancerProps struct {
	PayRate     float64   `json:"pay_rate"`
	HoursWorked float64   `json:"hours_worked"`
	VATNumber   vatNumber `json:"vat_number"`
}

// vatNumber accepts a JSON string or a bare number. YAML rosters turn an
// unquoted all-digit VAT number into a number on the way to JSON.
type vatNumber string

func (v *vatNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, jsonNull):
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = vatNumber(s)
		return nil
	case (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) && json.Valid(b):
		*v = vatNumber(b)
		return nil
	}
	return fmt.Errorf("vat_number must be a string or a number, got %s", b)
}

type FreelancerBuilder struct{}

func (b *FreelancerBuilder) Validate(props json.RawMessage) []model.CalculationMessage {
	var p freelancerProps
	if err := decodeProps(props, &p); err != nil {
		return invalidProps(TypeFreelancer, err)
	}
	return checkRateAndHours(p.PayRate, p.HoursWorked)
}

func (b *FreelancerBuilder) Build(props json.RawMessage) pay.Contract {
	var p freelancerProps
	_ = decodeProps(props, &p)

	return &pay.FreelancerContract{
		PayRate:     p.PayRate,
		HoursWorked: p.HoursWorked,
		VATNumber:   string(p.VATNumber),
	}
}
