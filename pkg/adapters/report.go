package adapters

import (
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/models/store"
)

func MapDomainStateToStore(s domain.ReportState) store.ReportState {
	out := store.ReportState{Report: MapDomainReportToStore(s.Report)}
	if s.SavedReports != nil {
		out.SavedReports = make([]store.Report, 0, len(s.SavedReports))
		for _, r := range s.SavedReports {
			out.SavedReports = append(out.SavedReports, MapDomainReportToStore(r))
		}
	}
	return out
}

func MapStoreStateToDomain(s *store.ReportState) *domain.ReportState {
	if s == nil {
		return nil
	}

	out := &domain.ReportState{Report: MapStoreReportToDomain(s.Report)}
	if s.SavedReports != nil {
		out.SavedReports = make([]domain.Report, 0, len(s.SavedReports))
		for _, r := range s.SavedReports {
			out.SavedReports = append(out.SavedReports, MapStoreReportToDomain(r))
		}
	}
	return out
}

func MapDomainReportToStore(r domain.Report) store.Report {
	out := store.Report{
		ID:           r.ID,
		ReportNumber: r.ReportNumber,
		ReportDate:   r.ReportDate,
		ClientName:   r.ClientName,
		Currency:     r.Currency,
		Settings: store.Settings{
			Language:                 r.Settings.Language,
			InflationRate:            r.Settings.InflationRate,
			ProjectStart:             r.Settings.ProjectStart,
			ProjectEnd:               r.Settings.ProjectEnd,
			EstTransformationCost:    r.Settings.EstTransformationCost,
			MinTransformationCost:    r.Settings.MinTransformationCost,
			ImplementationDays:       r.Settings.ImplementationDays,
			TransformationCostFactor: r.Settings.TransformationCostFactor,
			BreakdownPeople:          r.Settings.Breakdown.People,
			BreakdownProcess:         r.Settings.Breakdown.Process,
			BreakdownTech:            r.Settings.Breakdown.Tech,
		},
	}
	if r.Operations != nil {
		out.Operations = make([]store.Operation, 0, len(r.Operations))
		for _, op := range r.Operations {
			out.Operations = append(out.Operations, MapDomainOperationToStore(op))
		}
	}
	return out
}

func MapStoreReportToDomain(r store.Report) domain.Report {
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
			Breakdown: domain.CostBreakdown{
				People:  r.Settings.BreakdownPeople,
				Process: r.Settings.BreakdownProcess,
				Tech:    r.Settings.BreakdownTech,
			},
		},
	}
	if r.Operations != nil {
		out.Operations = make([]domain.Operation, 0, len(r.Operations))
		for _, op := range r.Operations {
			out.Operations = append(out.Operations, MapStoreOperationToDomain(op))
		}
	}
	return out
}

func MapDomainOperationToStore(op domain.Operation) store.Operation {
	out := store.Operation{
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
		LOCMultiplier:            op.LOCMultiplier,
		TokenCostsEnabled:        op.TokenCostsEnabled,
		HiringEnabled:            op.HiringEnabled,
	}
	if op.LOCActions != nil {
		out.LOCActions = make([]store.LOCAction, 0, len(op.LOCActions))
		for _, a := range op.LOCActions {
			out.LOCActions = append(out.LOCActions, store.LOCAction(a))
		}
	}
	if op.TokenCosts != nil {
		tc := store.TokenCosts(*op.TokenCosts)
		out.TokenCosts = &tc
	}
	if op.Hiring != nil {
		h := store.Hiring(*op.Hiring)
		out.Hiring = &h
	}
	return out
}

func MapStoreOperationToDomain(op store.Operation) domain.Operation {
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
		LOCMultiplier:            op.LOCMultiplier,
		TokenCostsEnabled:        op.TokenCostsEnabled,
		HiringEnabled:            op.HiringEnabled,
	}
	if op.LOCActions != nil {
		out.LOCActions = make([]domain.LOCAction, 0, len(op.LOCActions))
		for _, a := range op.LOCActions {
			out.LOCActions = append(out.LOCActions, domain.LOCAction(a))
		}
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
