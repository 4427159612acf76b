package engine

import (
	"testing"

	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
)

func hourly(props string) *model.StrategyInput {
	return &model.StrategyInput{Type: "hourly", Properties: json.RawMessage(props)}
}

func TestProcessDemoRoster(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		Employees: []model.EmployeeInput{
			{
				ID:       1,
				Name:     "Billie",
				Contract: hourly(`{"pay_rate": 50, "hours_worked": 100, "employer_cost": 1000}`),
			},
			{
				ID:   2,
				Name: "Charlie",
				Contract: &model.StrategyInput{
					Type:       "salaried",
					Properties: json.RawMessage(`{"monthly_salary": 5000, "percentage": 1}`),
				},
				Commission: &model.StrategyInput{
					Type:       "contract_commission",
					Properties: json.RawMessage(`{"commission": 100, "contracts_landed": 10}`),
				},
			},
			{
				ID:   3,
				Name: "Renee",
				Contract: &model.StrategyInput{
					Type:       "freelancer",
					Properties: json.RawMessage(`{"pay_rate": 40, "hours_worked": 20}`),
				},
			},
		},
	}

	resp := Process(req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation id")
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	slips := resp.CalculationResult.Payslips
	if len(slips) != 3 {
		t.Fatalf("expected 3 payslips, got %d", len(slips))
	}

	want := []float64{6000, 6000, 800}
	for i, w := range want {
		if slips[i].TotalPay != w {
			t.Fatalf("payslip %d: expected total %v, got %v", i, w, slips[i].TotalPay)
		}
	}

	if slips[0].CommissionPayment != nil {
		t.Fatal("expected no commission payment for hourly employee")
	}
	if slips[1].CommissionPayment == nil || *slips[1].CommissionPayment != 1000 {
		t.Fatalf("expected commission payment 1000, got %v", slips[1].CommissionPayment)
	}
	if slips[1].ContractPayment != 5000 {
		t.Fatalf("expected contract payment 5000, got %v", slips[1].ContractPayment)
	}
	if slips[1].CommissionType != "contract_commission" {
		t.Fatalf("expected commission type contract_commission, got %s", slips[1].CommissionType)
	}

	if resp.CalculationResult.TotalPayroll != 12800 {
		t.Fatalf("expected total payroll 12800, got %v", resp.CalculationResult.TotalPayroll)
	}
}

func TestProcessStopsAtUnknownContract(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		Employees: []model.EmployeeInput{
			{ID: 1, Name: "Billie", Contract: hourly(`{"pay_rate": 10, "hours_worked": 10}`)},
			{ID: 2, Name: "Pat", Contract: &model.StrategyInput{Type: "piecework"}},
			{ID: 3, Name: "Renee", Contract: hourly(`{"pay_rate": 10, "hours_worked": 10}`)},
		},
	}

	resp := Process(req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.CalculationResult.Messages))
	}
	if resp.CalculationResult.Messages[0].Code != model.CodeUnknownContractType {
		t.Fatalf("expected UNKNOWN_CONTRACT_TYPE, got %s", resp.CalculationResult.Messages[0].Code)
	}

	// Only the employee before the failure is paid
	if len(resp.CalculationResult.Payslips) != 1 {
		t.Fatalf("expected 1 payslip, got %d", len(resp.CalculationResult.Payslips))
	}
	if resp.CalculationResult.TotalPayroll != 1100 {
		t.Fatalf("expected total payroll 1100, got %v", resp.CalculationResult.TotalPayroll)
	}
}

func TestProcessCriticalCodes(t *testing.T) {
	tests := []struct {
		name     string
		employee model.EmployeeInput
		code     string
	}{
		{
			name:     "missing contract",
			employee: model.EmployeeInput{ID: 1, Name: "Nobody"},
			code:     model.CodeMissingContract,
		},
		{
			name: "unknown commission",
			employee: model.EmployeeInput{
				ID:         1,
				Name:       "Charlie",
				Contract:   hourly(`{}`),
				Commission: &model.StrategyInput{Type: "profit_share"},
			},
			code: model.CodeUnknownCommissionType,
		},
		{
			name:     "invalid properties",
			employee: model.EmployeeInput{ID: 1, Name: "Billie", Contract: hourly(`[1, 2]`)},
			code:     model.CodeInvalidProperties,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Process(&model.CalculationRequest{Employees: []model.EmployeeInput{tt.employee}})

			if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
				t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
			}
			msgs := resp.CalculationResult.Messages
			if len(msgs) != 1 || msgs[0].Code != tt.code {
				t.Fatalf("expected single %s message, got %+v", tt.code, msgs)
			}
			if len(resp.CalculationResult.Payslips) != 0 {
				t.Fatalf("expected no payslips, got %d", len(resp.CalculationResult.Payslips))
			}
		})
	}
}

func TestProcessDuplicateEmployeeID(t *testing.T) {
	req := &model.CalculationRequest{
		Employees: []model.EmployeeInput{
			{ID: 7, Name: "Billie", Contract: hourly(`{}`)},
			{ID: 7, Name: "Billie again", Contract: hourly(`{}`)},
		},
	}

	resp := Process(req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != model.CodeDuplicateEmployeeID {
		t.Fatalf("expected DUPLICATE_EMPLOYEE_ID, got %s", resp.CalculationResult.Messages[0].Code)
	}
	if len(resp.CalculationResult.Payslips) != 1 {
		t.Fatalf("expected 1 payslip, got %d", len(resp.CalculationResult.Payslips))
	}
}

func TestProcessWarningsAttachToPayslip(t *testing.T) {
	req := &model.CalculationRequest{
		Employees: []model.EmployeeInput{
			{ID: 1, Name: "Billie", Contract: hourly(`{"pay_rate": 10, "hours_worked": 10}`)},
			{ID: 2, Name: "Sam", Contract: hourly(`{"pay_rate": 10, "hours_worked": -5}`)},
		},
	}

	resp := Process(req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != model.CodeNegativeHours || msgs[0].Level != model.LevelWarning {
		t.Fatalf("expected one NEGATIVE_HOURS warning, got %+v", msgs)
	}

	slip := resp.CalculationResult.Payslips[1]
	if len(slip.CalculationMessageIndexes) != 1 || slip.CalculationMessageIndexes[0] != 0 {
		t.Fatalf("expected payslip to reference message 0, got %v", slip.CalculationMessageIndexes)
	}
	if slip.TotalPay != 950 {
		t.Fatalf("expected 950, got %v", slip.TotalPay)
	}
}

func TestProcessEmptyRoster(t *testing.T) {
	resp := Process(&model.CalculationRequest{TenantID: "t"})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages == nil || resp.CalculationResult.Payslips == nil {
		t.Fatal("expected empty slices, not nil")
	}
}

func TestProcessPayOverflowFails(t *testing.T) {
	req := &model.CalculationRequest{
		Employees: []model.EmployeeInput{
			{ID: 1, Name: "Billie", Contract: hourly(`{"pay_rate": 10, "hours_worked": 10}`)},
			{
				ID:   2,
				Name: "Renee",
				Contract: &model.StrategyInput{
					Type:       "freelancer",
					Properties: json.RawMessage(`{"pay_rate": 1e200, "hours_worked": 1e200}`),
				},
			},
		},
	}

	resp := Process(req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != model.CodePayOverflow || msgs[0].Level != model.LevelCritical {
		t.Fatalf("expected one critical PAY_OVERFLOW message, got %+v", msgs)
	}
	if len(resp.CalculationResult.Payslips) != 1 {
		t.Fatalf("expected 1 payslip, got %d", len(resp.CalculationResult.Payslips))
	}
	if resp.CalculationResult.TotalPayroll != 1100 {
		t.Fatalf("expected total payroll 1100, got %v", resp.CalculationResult.TotalPayroll)
	}
	if _, err := json.Marshal(resp); err != nil {
		t.Fatalf("expected response to encode, got %v", err)
	}
}

func TestProcessPayrollTotalOverflowFails(t *testing.T) {
	salaried := func(id int) model.EmployeeInput {
		return model.EmployeeInput{
			ID:   id,
			Name: "Charlie",
			Contract: &model.StrategyInput{
				Type:       "salaried",
				Properties: json.RawMessage(`{"monthly_salary": 1.5e308}`),
			},
		}
	}

	resp := Process(&model.CalculationRequest{Employees: []model.EmployeeInput{salaried(1), salaried(2)}})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != model.CodePayOverflow {
		t.Fatalf("expected PAY_OVERFLOW, got %s", resp.CalculationResult.Messages[0].Code)
	}
	if len(resp.CalculationResult.Payslips) != 1 || resp.CalculationResult.TotalPayroll != 1.5e308 {
		t.Fatalf("expected only the first payslip to count, got %d payslips totalling %v",
			len(resp.CalculationResult.Payslips), resp.CalculationResult.TotalPayroll)
	}
	if _, err := json.Marshal(resp); err != nil {
		t.Fatalf("expected response to encode, got %v", err)
	}
}
