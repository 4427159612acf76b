package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID  string          `json:"tenant_id"`
	Employees []EmployeeInput `json:"employees"`
}

type EmployeeInput struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Contract   *StrategyInput `json:"contract"`
	Commission *StrategyInput `json:"commission,omitempty"`
}

// StrategyInput names a registered contract or commission type and carries
// its type-specific properties undecoded.
type StrategyInput struct {
	Type       string          `json:"type"`
	Properties json.RawMessage `json:"properties,omitempty"`
}
