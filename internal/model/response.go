package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage `json:"messages"`
	Payslips     []Payslip            `json:"payslips"`
	TotalPayroll float64              `json:"total_payroll"`
}

// Payslip is the computed pay of one employee. CommissionPayment stays nil
// for employees without a commission.
type Payslip struct {
	EmployeeID                int      `json:"employee_id"`
	Name                      string   `json:"name"`
	ContractType              string   `json:"contract_type"`
	CommissionType            string   `json:"commission_type,omitempty"`
	ContractPayment           float64  `json:"contract_payment"`
	CommissionPayment         *float64 `json:"commission_payment"`
	TotalPay                  float64  `json:"total_pay"`
	CalculationMessageIndexes []int    `json:"calculation_message_indexes,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
