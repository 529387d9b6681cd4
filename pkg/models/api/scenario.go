package api

import "time"

type ScenarioInput struct {
	Role              string  `json:"role"`
	Region            string  `json:"region"`
	CasesPerMonth     int     `json:"cases_per_month"`
	PatientFee        float64 `json:"patient_fee"`
	EcodentCost       float64 `json:"ecodent_cost"`
	InitialInvestment float64 `json:"initial_investment"`
}

type ScenarioResult struct {
	IncomePerCase      float64  `json:"income_per_case"`
	MonthlyIncome      float64  `json:"monthly_income"`
	YearlyIncome       float64  `json:"yearly_income"`
	PaybackMonths      *float64 `json:"payback_months"`
	HoursSavedPerMonth float64  `json:"hours_saved_per_month"`
}

type ScenarioDisplay struct {
	IncomePerCase      string `json:"income_per_case"`
	MonthlyIncome      string `json:"monthly_income"`
	YearlyIncome       string `json:"yearly_income"`
	PaybackMonths      string `json:"payback_months,omitempty"`
	HoursSavedPerMonth string `json:"hours_saved_per_month,omitempty"`
}

type Calculation struct {
	CalculationID string          `json:"calculation_id"`
	CalculatedAt  time.Time       `json:"calculated_at"`
	Input         ScenarioInput   `json:"input"`
	Result        ScenarioResult  `json:"result"`
	Display       ScenarioDisplay `json:"display"`
}

type Event struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type EventsRequest struct {
	State  *ScenarioInput `json:"state,omitempty"`
	Events []Event        `json:"events"`
}

type ErrorResponse struct {
	Status     int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	EventIndex *int   `json:"event_index,omitempty"`
}

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknownRole    = "UNKNOWN_ROLE"
	CodeUnknownRegion  = "UNKNOWN_REGION"
	CodeUnknownTier    = "UNKNOWN_TIER"
	CodeUnknownEvent   = "UNKNOWN_EVENT"
	CodeUnknownProfile = "UNKNOWN_PROFILE"
	CodeInternal       = "INTERNAL"
)

type EventsResponse struct {
	State   ScenarioInput   `json:"state"`
	Result  ScenarioResult  `json:"result"`
	Display ScenarioDisplay `json:"display"`
}
