package model

import "fmt"

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeMissingContract         = "MISSING_CONTRACT"
	CodeUnknownContractType     = "UNKNOWN_CONTRACT_TYPE"
	CodeUnknownCommissionType   = "UNKNOWN_COMMISSION_TYPE"
	CodeDuplicateEmployeeID     = "DUPLICATE_EMPLOYEE_ID"
	CodeInvalidProperties       = "INVALID_PROPERTIES"
	CodeNegativeHours           = "NEGATIVE_HOURS"
	CodeNegativePayRate         = "NEGATIVE_PAY_RATE"
	CodeNegativeContractsLanded = "NEGATIVE_CONTRACTS_LANDED"
	CodePayOverflow             = "PAY_OVERFLOW"
)

func Critical(code, format string, args ...any) CalculationMessage {
	return CalculationMessage{Level: LevelCritical, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Warning(code, format string, args ...any) CalculationMessage {
	return CalculationMessage{Level: LevelWarning, Code: code, Message: fmt.Sprintf(format, args...)}
}
