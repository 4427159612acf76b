package strategies

import (
	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
	"payroll-engine/internal/pay"
)

type contractCommissionProps struct {
	Commission      *float64 `json:"commission"`
	ContractsLanded int      `json:"contracts_landed"`
}

type ContractCommissionBuilder struct{}

func (b *ContractCommissionBuilder) Validate(props json.RawMessage) []model.CalculationMessage {
	var p contractCommissionProps
	if err := decodeProps(props, &p); err != nil {
		return invalidProps(TypeContractCommission, err)
	}
	if p.ContractsLanded < 0 {
		return []model.CalculationMessage{
			model.Warning(model.CodeNegativeContractsLanded, "Contracts landed %d is negative", p.ContractsLanded),
		}
	}
	return nil
}

func (b *ContractCommissionBuilder) Build(props json.RawMessage) pay.Commission {
	var p contractCommissionProps
	_ = decodeProps(props, &p)

	return &pay.ContractCommission{
		Commission:      orDefault(p.Commission, pay.DefaultCommission),
		ContractsLanded: p.ContractsLanded,
	}
}
