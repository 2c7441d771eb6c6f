package report

import (
	"time"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
)

const (
	DefaultLanguage = "pl"
	DefaultCurrency = "PLN"
)

var duplicateSuffixes = map[string]string{
	"pl": " (kopia)",
	"en": " (copy)",
}

func duplicateSuffix(language string) string {
	if suffix, ok := duplicateSuffixes[language]; ok {
		return suffix
	}
	return duplicateSuffixes[DefaultLanguage]
}

func DefaultSettings(now time.Time) domain.GlobalSettings {
	start := now.Truncate(24 * time.Hour)
	return domain.GlobalSettings{
		Language:                 DefaultLanguage,
		InflationRate:            0.03,
		ProjectStart:             start,
		ProjectEnd:               start.AddDate(1, 0, 0),
		ImplementationDays:       90,
		TransformationCostFactor: 0.3,
		Breakdown: domain.CostBreakdown{
			People:  40,
			Process: 30,
			Tech:    30,
		},
	}
}

// DefaultOperation is the template new operations start from. Every extension record is
// present so that toggling a flag never exposes a missing record.
func DefaultOperation() domain.Operation {
	return domain.Operation{
		Name:                     "Nowa operacja",
		Category:                 domain.CategoryOther,
		EmployeeCount:            1,
		AvgHourlyRate:            50,
		EmployerCostEnabled:      true,
		Frequency:                1,
		FrequencyUnit:            domain.FrequencyDay,
		TimePerExecution:         30,
		TimeUnit:                 domain.TimeMinutes,
		EfficiencyGain:           0.5,
		ImplementationDifficulty: 5,
		AutomationPercent:        70,
		HumanInLoopPercent:       30,
		LOCActions:               []domain.LOCAction{},
		LOCMultiplier:            1,
		TokenCosts: &domain.TokenCosts{
			MonthlyAPICalls:      1000,
			AvgTokensPerCall:     1500,
			InputPricePerMToken:  2.5,
			OutputPricePerMToken: 10,
			ModelName:            "gpt-4o",
		},
		Hiring: &domain.HiringData{
			Count:                   1,
			UseStandardEmployerCost: true,
		},
	}
}
