package report

import (
	"time"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
)

// ClientInfo updates top-level report fields. Nil fields are left untouched.
type ClientInfo struct {
	ReportNumber *string
	ReportDate   *time.Time
	ClientName   *string
	Currency     *string
}

func (c ClientInfo) apply(r *domain.Report) {
	if c.ReportNumber != nil {
		r.ReportNumber = *c.ReportNumber
	}
	if c.ReportDate != nil {
		r.ReportDate = *c.ReportDate
	}
	if c.ClientName != nil {
		r.ClientName = *c.ClientName
	}
	if c.Currency != nil {
		r.Currency = *c.Currency
	}
}

// SettingsChanges updates report settings. Nil fields are left untouched.
type SettingsChanges struct {
	Language                 *string
	InflationRate            *float64
	ProjectStart             *time.Time
	ProjectEnd               *time.Time
	EstTransformationCost    *float64
	MinTransformationCost    *float64
	ImplementationDays       *int
	TransformationCostFactor *float64
	Breakdown                *domain.CostBreakdown
}

func (c SettingsChanges) apply(s *domain.GlobalSettings) {
	if c.Language != nil {
		s.Language = *c.Language
	}
	if c.InflationRate != nil {
		s.InflationRate = *c.InflationRate
	}
	if c.ProjectStart != nil {
		s.ProjectStart = *c.ProjectStart
	}
	if c.ProjectEnd != nil {
		s.ProjectEnd = *c.ProjectEnd
	}
	if c.EstTransformationCost != nil {
		s.EstTransformationCost = *c.EstTransformationCost
	}
	if c.MinTransformationCost != nil {
		s.MinTransformationCost = *c.MinTransformationCost
	}
	if c.ImplementationDays != nil {
		s.ImplementationDays = *c.ImplementationDays
	}
	if c.TransformationCostFactor != nil {
		s.TransformationCostFactor = *c.TransformationCostFactor
	}
	if c.Breakdown != nil {
		s.Breakdown = *c.Breakdown
	}
}

// Merge overlays other on top of c.
func (c SettingsChanges) Merge(other SettingsChanges) SettingsChanges {
	out := c
	if other.Language != nil {
		out.Language = other.Language
	}
	if other.InflationRate != nil {
		out.InflationRate = other.InflationRate
	}
	if other.ProjectStart != nil {
		out.ProjectStart = other.ProjectStart
	}
	if other.ProjectEnd != nil {
		out.ProjectEnd = other.ProjectEnd
	}
	if other.EstTransformationCost != nil {
		out.EstTransformationCost = other.EstTransformationCost
	}
	if other.MinTransformationCost != nil {
		out.MinTransformationCost = other.MinTransformationCost
	}
	if other.ImplementationDays != nil {
		out.ImplementationDays = other.ImplementationDays
	}
	if other.TransformationCostFactor != nil {
		out.TransformationCostFactor = other.TransformationCostFactor
	}
	if other.Breakdown != nil {
		out.Breakdown = other.Breakdown
	}
	return out
}

// OperationChanges updates an operation. Nil fields are left untouched; extension records
// and the LOC action list are replaced as a whole.
type OperationChanges struct {
	Name     *string
	Category *domain.Category

	EmployeeCount       *int
	AvgHourlyRate       *float64
	EmployerCostEnabled *bool

	Frequency        *float64
	FrequencyUnit    *domain.FrequencyUnit
	TimePerExecution *float64
	TimeUnit         *domain.TimeUnit

	EfficiencyGain           *float64
	ImplementationDifficulty *int
	AutomationPercent        *float64
	HumanInLoopPercent       *float64

	LOCEnabled    *bool
	LOCActions    *[]domain.LOCAction
	LOCMultiplier *float64

	TokenCostsEnabled *bool
	TokenCosts        *domain.TokenCosts

	HiringEnabled *bool
	Hiring        *domain.HiringData
}

func (c OperationChanges) apply(op *domain.Operation) {
	if c.Name != nil {
		op.Name = *c.Name
	}
	if c.Category != nil {
		op.Category = *c.Category
	}
	if c.EmployeeCount != nil {
		op.EmployeeCount = *c.EmployeeCount
	}
	if c.AvgHourlyRate != nil {
		op.AvgHourlyRate = *c.AvgHourlyRate
	}
	if c.EmployerCostEnabled != nil {
		op.EmployerCostEnabled = *c.EmployerCostEnabled
	}
	if c.Frequency != nil {
		op.Frequency = *c.Frequency
	}
	if c.FrequencyUnit != nil {
		op.FrequencyUnit = *c.FrequencyUnit
	}
	if c.TimePerExecution != nil {
		op.TimePerExecution = *c.TimePerExecution
	}
	if c.TimeUnit != nil {
		op.TimeUnit = *c.TimeUnit
	}
	if c.EfficiencyGain != nil {
		op.EfficiencyGain = *c.EfficiencyGain
	}
	if c.ImplementationDifficulty != nil {
		op.ImplementationDifficulty = *c.ImplementationDifficulty
	}
	if c.AutomationPercent != nil {
		op.AutomationPercent = *c.AutomationPercent
	}
	if c.HumanInLoopPercent != nil {
		op.HumanInLoopPercent = *c.HumanInLoopPercent
	}
	if c.LOCEnabled != nil {
		op.LOCEnabled = *c.LOCEnabled
	}
	if c.LOCActions != nil {
		op.LOCActions = append([]domain.LOCAction{}, (*c.LOCActions)...)
	}
	if c.LOCMultiplier != nil {
		op.LOCMultiplier = *c.LOCMultiplier
	}
	if c.TokenCostsEnabled != nil {
		op.TokenCostsEnabled = *c.TokenCostsEnabled
	}
	if c.TokenCosts != nil {
		tc := *c.TokenCosts
		op.TokenCosts = &tc
	}
	if c.HiringEnabled != nil {
		op.HiringEnabled = *c.HiringEnabled
	}
	if c.Hiring != nil {
		h := *c.Hiring
		op.Hiring = &h
	}
}
