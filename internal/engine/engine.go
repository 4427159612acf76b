package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"payroll-engine/internal/model"
	"payroll-engine/internal/pay"
	"payroll-engine/internal/strategies"
)

// Process runs one payroll calculation. Employees are handled in request
// order and the run stops at the first critical message.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	payslips := []model.Payslip{}
	outcome := model.OutcomeSuccess
	var total float64

	seen := make(map[int]bool, len(req.Employees))

	for i := range req.Employees {
		in := &req.Employees[i]

		msgs, employee := buildEmployee(in, seen)
		var slip model.Payslip
		if employee != nil {
			slip = payslip(in, employee)
			if !finite(slip.ContractPayment, commissionAmount(slip), slip.TotalPay, total+slip.TotalPay) {
				msgs = append(msgs, model.Critical(model.CodePayOverflow,
					"Pay for employee %d is not a finite amount", in.ID))
			}
		}

		var msgIndexes []int
		hasCritical := false
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			msgIndexes = append(msgIndexes, m.ID)
			if m.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}

		seen[in.ID] = true
		slip.CalculationMessageIndexes = msgIndexes
		payslips = append(payslips, slip)
		total += slip.TotalPay
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     allMessages,
			Payslips:     payslips,
			TotalPayroll: total,
		},
	}
}

// buildEmployee returns the messages for one input and, when none of them
// is critical, the built employee.
func buildEmployee(in *model.EmployeeInput, seen map[int]bool) ([]model.CalculationMessage, *pay.Employee) {
	if seen[in.ID] {
		return []model.CalculationMessage{
			model.Critical(model.CodeDuplicateEmployeeID, "Employee id %d appears more than once", in.ID),
		}, nil
	}

	if in.Contract == nil || in.Contract.Type == "" {
		return []model.CalculationMessage{
			model.Critical(model.CodeMissingContract, "Employee %d has no contract", in.ID),
		}, nil
	}

	cb, ok := strategies.Contract(in.Contract.Type)
	if !ok {
		return []model.CalculationMessage{
			model.Critical(model.CodeUnknownContractType, "Unknown contract type: %s", in.Contract.Type),
		}, nil
	}

	var mb strategies.CommissionBuilder
	if in.Commission != nil {
		mb, ok = strategies.Commission(in.Commission.Type)
		if !ok {
			return []model.CalculationMessage{
				model.Critical(model.CodeUnknownCommissionType, "Unknown commission type: %s", in.Commission.Type),
			}, nil
		}
	}

	msgs := cb.Validate(in.Contract.Properties)
	if mb != nil {
		msgs = append(msgs, mb.Validate(in.Commission.Properties)...)
	}
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return msgs, nil
		}
	}

	var commission pay.Commission
	if mb != nil {
		commission = mb.Build(in.Commission.Properties)
	}

	employee, err := pay.NewEmployee(in.Name, in.ID, cb.Build(in.Contract.Properties), commission)
	if err != nil {
		return append(msgs, model.Critical(model.CodeMissingContract, "Employee %d: %v", in.ID, err)), nil
	}
	return msgs, employee
}

func payslip(in *model.EmployeeInput, e *pay.Employee) model.Payslip {
	slip := model.Payslip{
		EmployeeID:      e.ID,
		Name:            e.Name,
		ContractType:    in.Contract.Type,
		ContractPayment: e.Contract.Payment(),
		TotalPay:        e.ComputePay(),
	}
	if e.HasCommission() {
		bonus := e.Commission.Payment()
		slip.CommissionType = in.Commission.Type
		slip.CommissionPayment = &bonus
	}
	return slip
}

func commissionAmount(slip model.Payslip) float64 {
	if slip.CommissionPayment == nil {
		return 0
	}
	return *slip.CommissionPayment
}

// finite reports whether every amount can be encoded as a JSON number.
func finite(amounts ...float64) bool {
	for _, v := range amounts {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
