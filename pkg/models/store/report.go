package store

import "time"

// ReportState is the persisted document. Field tags are part of the storage format.
type ReportState struct {
	Report       Report   `json:"report"`
	SavedReports []Report `json:"saved_reports"`
}

type Report struct {
	ID           string      `json:"id"`
	ReportNumber string      `json:"report_number"`
	ReportDate   time.Time   `json:"report_date"`
	ClientName   string      `json:"client_name"`
	Currency     string      `json:"currency"`
	Settings     Settings    `json:"settings"`
	Operations   []Operation `json:"operations"`
}

type Settings struct {
	Language                 string    `json:"language"`
	InflationRate            float64   `json:"inflation_rate"`
	ProjectStart             time.Time `json:"project_start"`
	ProjectEnd               time.Time `json:"project_end"`
	EstTransformationCost    float64   `json:"est_transformation_cost"`
	MinTransformationCost    float64   `json:"min_transformation_cost"`
	ImplementationDays       int       `json:"implementation_days"`
	TransformationCostFactor float64   `json:"transformation_cost_factor"`
	BreakdownPeople          float64   `json:"breakdown_people"`
	BreakdownProcess         float64   `json:"breakdown_process"`
	BreakdownTech            float64   `json:"breakdown_tech"`
}

type Operation struct {
	ID                       string      `json:"id"`
	Name                     string      `json:"name"`
	Category                 string      `json:"category"`
	EmployeeCount            int         `json:"employee_count"`
	AvgHourlyRate            float64     `json:"avg_hourly_rate"`
	EmployerCostEnabled      bool        `json:"employer_cost_enabled"`
	Frequency                float64     `json:"frequency"`
	FrequencyUnit            string      `json:"frequency_unit"`
	TimePerExecution         float64     `json:"time_per_execution"`
	TimeUnit                 string      `json:"time_unit"`
	EfficiencyGain           float64     `json:"efficiency_gain"`
	ImplementationDifficulty int         `json:"implementation_difficulty"`
	AutomationPercent        float64     `json:"automation_percent"`
	HumanInLoopPercent       float64     `json:"human_in_loop_percent"`
	LOCEnabled               bool        `json:"loc_enabled"`
	LOCActions               []LOCAction `json:"loc_actions"`
	LOCMultiplier            float64     `json:"loc_multiplier"`
	TokenCostsEnabled        bool        `json:"token_costs_enabled"`
	TokenCosts               *TokenCosts `json:"token_costs,omitempty"`
	HiringEnabled            bool        `json:"hiring_enabled"`
	Hiring                   *Hiring     `json:"hiring,omitempty"`
}

type LOCAction struct {
	Name            string  `json:"name"`
	EventsPerMonth  float64 `json:"events_per_month"`
	AvgCostPerEvent float64 `json:"avg_cost_per_event"`
}

type TokenCosts struct {
	MonthlyAPICalls      float64 `json:"monthly_api_calls"`
	AvgTokensPerCall     float64 `json:"avg_tokens_per_call"`
	InputPricePerMToken  float64 `json:"input_price_per_m_token"`
	OutputPricePerMToken float64 `json:"output_price_per_m_token"`
	ModelName            string  `json:"model_name"`
}

type Hiring struct {
	Count                   int     `json:"count"`
	EmployeeGross           float64 `json:"employee_gross"`
	EmployerGross           float64 `json:"employer_gross"`
	UseStandardEmployerCost bool    `json:"use_standard_employer_cost"`
	RecruitmentCost         float64 `json:"recruitment_cost"`
	OnboardingCost          float64 `json:"onboarding_cost"`
	NewEmployeeErrorCost    float64 `json:"new_employee_error_cost"`
	BadRecruitmentCost      float64 `json:"bad_recruitment_cost"`
	TeamExpansionCost       float64 `json:"team_expansion_cost"`
}
