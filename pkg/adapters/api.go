package adapters

import (
	"math"

	"github.com/de-tools/roi-atlas/pkg/models/api"
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/shopspring/decimal"
)

// RoundMoney rounds a currency amount half away from zero to two places.
// NaN and infinities have no decimal form and round to zero.
func RoundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func MapReportDomainToApi(r domain.Report) api.Report {
	out := api.Report{
		ID:           r.ID,
		ReportNumber: r.ReportNumber,
		ReportDate:   r.ReportDate,
		ClientName:   r.ClientName,
		Currency:     r.Currency,
		Settings: api.Settings{
			Language:                 r.Settings.Language,
			InflationRate:            r.Settings.InflationRate,
			ProjectStart:             r.Settings.ProjectStart,
			ProjectEnd:               r.Settings.ProjectEnd,
			EstTransformationCost:    r.Settings.EstTransformationCost,
			MinTransformationCost:    r.Settings.MinTransformationCost,
			ImplementationDays:       r.Settings.ImplementationDays,
			TransformationCostFactor: r.Settings.TransformationCostFactor,
			Breakdown:                api.Breakdown(r.Settings.Breakdown),
		},
		Operations: make([]api.Operation, 0, len(r.Operations)),
	}
	for _, op := range r.Operations {
		out.Operations = append(out.Operations, MapOperationDomainToApi(op))
	}
	return out
}

func MapReportListItemDomainToApi(r domain.Report) api.ReportListItem {
	return api.ReportListItem{
		ID:             r.ID,
		ReportNumber:   r.ReportNumber,
		ReportDate:     r.ReportDate,
		ClientName:     r.ClientName,
		OperationCount: len(r.Operations),
	}
}

func MapOperationDomainToApi(op domain.Operation) api.Operation {
	out := api.Operation{
		ID:                       op.ID,
		Name:                     op.Name,
		Category:                 string(op.Category),
		EmployeeCount:            op.EmployeeCount,
		AvgHourlyRate:            op.AvgHourlyRate,
		EmployerCostEnabled:      op.EmployerCostEnabled,
		Frequency:                op.Frequency,
		FrequencyUnit:            string(op.FrequencyUnit),
		TimePerExecution:         op.TimePerExecution,
		TimeUnit:                 string(op.TimeUnit),
		EfficiencyGain:           op.EfficiencyGain,
		ImplementationDifficulty: op.ImplementationDifficulty,
		AutomationPercent:        op.AutomationPercent,
		HumanInLoopPercent:       op.HumanInLoopPercent,
		LOCEnabled:               op.LOCEnabled,
		LOCActions:               make([]api.LOCAction, 0, len(op.LOCActions)),
		LOCMultiplier:            op.LOCMultiplier,
		TokenCostsEnabled:        op.TokenCostsEnabled,
		HiringEnabled:            op.HiringEnabled,
	}
	for _, a := range op.LOCActions {
		out.LOCActions = append(out.LOCActions, api.LOCAction(a))
	}
	if op.TokenCosts != nil {
		tc := api.TokenCosts(*op.TokenCosts)
		out.TokenCosts = &tc
	}
	if op.Hiring != nil {
		h := api.Hiring(*op.Hiring)
		out.Hiring = &h
	}
	return out
}

func MapReportApiToDomain(r api.Report) domain.Report {
	out := domain.Report{
		ID:           r.ID,
		ReportNumber: r.ReportNumber,
		ReportDate:   r.ReportDate,
		ClientName:   r.ClientName,
		Currency:     r.Currency,
		Settings: domain.GlobalSettings{
			Language:                 r.Settings.Language,
			InflationRate:            r.Settings.InflationRate,
			ProjectStart:             r.Settings.ProjectStart,
			ProjectEnd:               r.Settings.ProjectEnd,
			EstTransformationCost:    r.Settings.EstTransformationCost,
			MinTransformationCost:    r.Settings.MinTransformationCost,
			ImplementationDays:       r.Settings.ImplementationDays,
			TransformationCostFactor: r.Settings.TransformationCostFactor,
			Breakdown:                domain.CostBreakdown(r.Settings.Breakdown),
		},
		Operations: make([]domain.Operation, 0, len(r.Operations)),
	}
	for _, op := range r.Operations {
		out.Operations = append(out.Operations, MapOperationApiToDomain(op))
	}
	return out
}

func MapOperationApiToDomain(op api.Operation) domain.Operation {
	out := domain.Operation{
		ID:                       op.ID,
		Name:                     op.Name,
		Category:                 domain.Category(op.Category),
		EmployeeCount:            op.EmployeeCount,
		AvgHourlyRate:            op.AvgHourlyRate,
		EmployerCostEnabled:      op.EmployerCostEnabled,
		Frequency:                op.Frequency,
		FrequencyUnit:            domain.FrequencyUnit(op.FrequencyUnit),
		TimePerExecution:         op.TimePerExecution,
		TimeUnit:                 domain.TimeUnit(op.TimeUnit),
		EfficiencyGain:           op.EfficiencyGain,
		ImplementationDifficulty: op.ImplementationDifficulty,
		AutomationPercent:        op.AutomationPercent,
		HumanInLoopPercent:       op.HumanInLoopPercent,
		LOCEnabled:               op.LOCEnabled,
		LOCActions:               make([]domain.LOCAction, 0, len(op.LOCActions)),
		LOCMultiplier:            op.LOCMultiplier,
		TokenCostsEnabled:        op.TokenCostsEnabled,
		HiringEnabled:            op.HiringEnabled,
	}
	for _, a := range op.LOCActions {
		out.LOCActions = append(out.LOCActions, domain.LOCAction(a))
	}
	if op.TokenCosts != nil {
		tc := domain.TokenCosts(*op.TokenCosts)
		out.TokenCosts = &tc
	}
	if op.Hiring != nil {
		h := domain.HiringData(*op.Hiring)
		out.Hiring = &h
	}
	return out
}

func MapOperationPatchApiToChanges(p api.OperationPatch) report.OperationChanges {
	changes := report.OperationChanges{
		Name:                     p.Name,
		EmployeeCount:            p.EmployeeCount,
		AvgHourlyRate:            p.AvgHourlyRate,
		EmployerCostEnabled:      p.EmployerCostEnabled,
		Frequency:                p.Frequency,
		TimePerExecution:         p.TimePerExecution,
		EfficiencyGain:           p.EfficiencyGain,
		ImplementationDifficulty: p.ImplementationDifficulty,
		AutomationPercent:        p.AutomationPercent,
		HumanInLoopPercent:       p.HumanInLoopPercent,
		LOCEnabled:               p.LOCEnabled,
		LOCMultiplier:            p.LOCMultiplier,
		TokenCostsEnabled:        p.TokenCostsEnabled,
		HiringEnabled:            p.HiringEnabled,
	}
	if p.Category != nil {
		c := domain.Category(*p.Category)
		changes.Category = &c
	}
	if p.FrequencyUnit != nil {
		u := domain.FrequencyUnit(*p.FrequencyUnit)
		changes.FrequencyUnit = &u
	}
	if p.TimeUnit != nil {
		u := domain.TimeUnit(*p.TimeUnit)
		changes.TimeUnit = &u
	}
	if p.LOCActions != nil {
		actions := make([]domain.LOCAction, 0, len(*p.LOCActions))
		for _, a := range *p.LOCActions {
			actions = append(actions, domain.LOCAction(a))
		}
		changes.LOCActions = &actions
	}
	if p.TokenCosts != nil {
		tc := domain.TokenCosts(*p.TokenCosts)
		changes.TokenCosts = &tc
	}
	if p.Hiring != nil {
		h := domain.HiringData(*p.Hiring)
		changes.Hiring = &h
	}
	return changes
}

func MapClientInfoPatchApiToCommand(p api.ClientInfoPatch) report.ClientInfo {
	return report.ClientInfo{
		ReportNumber: p.ReportNumber,
		ReportDate:   p.ReportDate,
		ClientName:   p.ClientName,
		Currency:     p.Currency,
	}
}

func MapSettingsPatchApiToChanges(p api.SettingsPatch) report.SettingsChanges {
	changes := report.SettingsChanges{
		Language:                 p.Language,
		InflationRate:            p.InflationRate,
		ProjectStart:             p.ProjectStart,
		ProjectEnd:               p.ProjectEnd,
		EstTransformationCost:    p.EstTransformationCost,
		MinTransformationCost:    p.MinTransformationCost,
		ImplementationDays:       p.ImplementationDays,
		TransformationCostFactor: p.TransformationCostFactor,
	}
	if p.Breakdown != nil {
		b := domain.CostBreakdown(*p.Breakdown)
		changes.Breakdown = &b
	}
	return changes
}

func MapROIResultDomainToApi(r domain.ROIResult) api.ROIResult {
	return api.ROIResult{
		ROIPercent1Y:    RoundMoney(r.ROIPercent1Y),
		ROIPercent3Y:    RoundMoney(r.ROIPercent3Y),
		ROIValue1Y:      RoundMoney(r.ROIValue1Y),
		ROIValue3Y:      RoundMoney(r.ROIValue3Y),
		PaybackMonths:   RoundMoney(r.PaybackMonths),
		TotalInvestment: RoundMoney(r.TotalInvestment),
	}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		CurrentCost: RoundMoney(s.CurrentCost),
		FutureCost:  RoundMoney(s.FutureCost),
		Savings:     RoundMoney(s.Savings),
		Investment:  RoundMoney(s.Investment),
		ROI1Y:       RoundMoney(s.ROI1Y),
		ROI3Y:       RoundMoney(s.ROI3Y),
	}
}

func MapOperationResultDomainToApi(r domain.OperationResult) api.OperationResult {
	return api.OperationResult{
		OperationID:    r.OperationID,
		Name:           r.Name,
		Category:       string(r.Category),
		LaborAnnual:    RoundMoney(r.LaborAnnual),
		LOCAnnual:      RoundMoney(r.LOCAnnual),
		TokenAnnual:    RoundMoney(r.TokenAnnual),
		CurrentCost:    RoundMoney(r.CurrentCost),
		FutureCost:     RoundMoney(r.FutureCost),
		AnnualSavings:  RoundMoney(r.AnnualSavings),
		Transformation: RoundMoney(r.Transformation),
		ROI:            MapROIResultDomainToApi(r.ROI),
	}
}
