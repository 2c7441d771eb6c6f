package api

import "time"

type Report struct {
	ID           string      `json:"id"`
	ReportNumber string      `json:"report_number"`
	ReportDate   time.Time   `json:"report_date"`
	ClientName   string      `json:"client_name"`
	Currency     string      `json:"currency"`
	Settings     Settings    `json:"settings"`
	Operations   []Operation `json:"operations"`
}

type ReportListItem struct {
	ID             string    `json:"id"`
	ReportNumber   string    `json:"report_number"`
	ReportDate     time.Time `json:"report_date"`
	ClientName     string    `json:"client_name"`
	OperationCount int       `json:"operation_count"`
}

type Breakdown struct {
	People  float64 `json:"people"`
	Process float64 `json:"process"`
	Tech    float64 `json:"tech"`
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
	Breakdown                Breakdown `json:"breakdown"`
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

// OperationPatch carries only the fields a client wants to change.
type OperationPatch struct {
	Name                     *string      `json:"name,omitempty"`
	Category                 *string      `json:"category,omitempty"`
	EmployeeCount            *int         `json:"employee_count,omitempty"`
	AvgHourlyRate            *float64     `json:"avg_hourly_rate,omitempty"`
	EmployerCostEnabled      *bool        `json:"employer_cost_enabled,omitempty"`
	Frequency                *float64     `json:"frequency,omitempty"`
	FrequencyUnit            *string      `json:"frequency_unit,omitempty"`
	TimePerExecution         *float64     `json:"time_per_execution,omitempty"`
	TimeUnit                 *string      `json:"time_unit,omitempty"`
	EfficiencyGain           *float64     `json:"efficiency_gain,omitempty"`
	ImplementationDifficulty *int         `json:"implementation_difficulty,omitempty"`
	AutomationPercent        *float64     `json:"automation_percent,omitempty"`
	HumanInLoopPercent       *float64     `json:"human_in_loop_percent,omitempty"`
	LOCEnabled               *bool        `json:"loc_enabled,omitempty"`
	LOCActions               *[]LOCAction `json:"loc_actions,omitempty"`
	LOCMultiplier            *float64     `json:"loc_multiplier,omitempty"`
	TokenCostsEnabled        *bool        `json:"token_costs_enabled,omitempty"`
	TokenCosts               *TokenCosts  `json:"token_costs,omitempty"`
	HiringEnabled            *bool        `json:"hiring_enabled,omitempty"`
	Hiring                   *Hiring      `json:"hiring,omitempty"`
}

type ClientInfoPatch struct {
	ReportNumber *string    `json:"report_number,omitempty"`
	ReportDate   *time.Time `json:"report_date,omitempty"`
	ClientName   *string    `json:"client_name,omitempty"`
	Currency     *string    `json:"currency,omitempty"`
}

type SettingsPatch struct {
	Language                 *string    `json:"language,omitempty"`
	InflationRate            *float64   `json:"inflation_rate,omitempty"`
	ProjectStart             *time.Time `json:"project_start,omitempty"`
	ProjectEnd               *time.Time `json:"project_end,omitempty"`
	EstTransformationCost    *float64   `json:"est_transformation_cost,omitempty"`
	MinTransformationCost    *float64   `json:"min_transformation_cost,omitempty"`
	ImplementationDays       *int       `json:"implementation_days,omitempty"`
	TransformationCostFactor *float64   `json:"transformation_cost_factor,omitempty"`
	Breakdown                *Breakdown `json:"breakdown,omitempty"`
}

type NewReportRequest struct {
	Preset     string         `json:"preset,omitempty"`
	ClientName *string        `json:"client_name,omitempty"`
	Currency   *string        `json:"currency,omitempty"`
	Settings   *SettingsPatch `json:"settings,omitempty"`
}

type ROIResult struct {
	ROIPercent1Y    float64 `json:"roi_percent_1y"`
	ROIPercent3Y    float64 `json:"roi_percent_3y"`
	ROIValue1Y      float64 `json:"roi_value_1y"`
	ROIValue3Y      float64 `json:"roi_value_3y"`
	PaybackMonths   float64 `json:"payback_months"`
	TotalInvestment float64 `json:"total_investment"`
}

type Summary struct {
	CurrentCost float64 `json:"current_cost"`
	FutureCost  float64 `json:"future_cost"`
	Savings     float64 `json:"savings"`
	Investment  float64 `json:"investment"`
	ROI1Y       float64 `json:"roi_1y"`
	ROI3Y       float64 `json:"roi_3y"`
}

type OperationResult struct {
	OperationID    string    `json:"operation_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	LaborAnnual    float64   `json:"labor_annual"`
	LOCAnnual      float64   `json:"loc_annual"`
	TokenAnnual    float64   `json:"token_annual"`
	CurrentCost    float64   `json:"current_cost"`
	FutureCost     float64   `json:"future_cost"`
	AnnualSavings  float64   `json:"annual_savings"`
	Transformation float64   `json:"transformation"`
	ROI            ROIResult `json:"roi"`
}

type ReportResults struct {
	Currency   string            `json:"currency"`
	Operations []OperationResult `json:"operations"`
	Summary    Summary           `json:"summary"`
}
