package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// operationFlags binds an operation's editable fields to command flags. Only flags the user
// actually set end up in the resulting changes.
type operationFlags struct {
	name               string
	category           string
	employees          int
	hourlyRate         float64
	employerCost       bool
	frequency          float64
	frequencyUnit      string
	timePerExecution   float64
	timeUnit           string
	efficiencyGain     float64
	difficulty         int
	automationPercent  float64
	humanInLoopPercent float64
	loc                bool
	locActions         []string
	locMultiplier      float64
	tokens             bool
	tokenCalls         float64
	tokensPerCall      float64
	tokenInputPrice    float64
	tokenOutputPrice   float64
	tokenModel         string
	hiring             bool
	hireCount          int
	hireEmployeeGross  float64
	hireEmployerGross  float64
	hireStandardCost   bool
	hireRecruitment    float64
	hireOnboarding     float64
	hireErrorCost      float64
	hireBadRecruitment float64
	hireTeamExpansion  float64
}

func (f *operationFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "Operation name")
	flags.StringVar(&f.category, "category", "", fmt.Sprintf("Category (%s)", joinCategories()))
	flags.IntVar(&f.employees, "employees", 0, "Number of employees performing the operation")
	flags.Float64Var(&f.hourlyRate, "rate", 0, "Average gross hourly rate")
	flags.BoolVar(&f.employerCost, "employer-cost", true, "Apply the employer cost multiplier")
	flags.Float64Var(&f.frequency, "frequency", 0, "Executions per frequency unit")
	flags.StringVar(&f.frequencyUnit, "frequency-unit", "", "Frequency unit (day, week, month, year)")
	flags.Float64Var(&f.timePerExecution, "time", 0, "Time per execution")
	flags.StringVar(&f.timeUnit, "time-unit", "", "Time unit (minutes, hours)")
	flags.Float64Var(&f.efficiencyGain, "gain", 0, "Efficiency gain in [0,1]")
	flags.IntVar(&f.difficulty, "difficulty", 0, "Implementation difficulty 1-10")
	flags.Float64Var(&f.automationPercent, "automation", 0, "Automated share in percent")
	flags.Float64Var(&f.humanInLoopPercent, "human", 0, "Human-in-the-loop share in percent")

	flags.BoolVar(&f.loc, "loc", false, "Include lost-opportunity costs")
	flags.StringArrayVar(&f.locActions, "loc-action", nil, "Lost-opportunity action as name:events_per_month:cost_per_event (repeatable, replaces the list)")
	flags.Float64Var(&f.locMultiplier, "loc-multiplier", 0, "Lost-opportunity multiplier")

	flags.BoolVar(&f.tokens, "tokens", false, "Include AI token costs")
	flags.Float64Var(&f.tokenCalls, "token-calls", 0, "Monthly API calls")
	flags.Float64Var(&f.tokensPerCall, "token-per-call", 0, "Average tokens per call")
	flags.Float64Var(&f.tokenInputPrice, "token-input-price", 0, "Input price per million tokens")
	flags.Float64Var(&f.tokenOutputPrice, "token-output-price", 0, "Output price per million tokens")
	flags.StringVar(&f.tokenModel, "token-model", "", "Model name")

	flags.BoolVar(&f.hiring, "hiring", false, "Include hiring costs")
	flags.IntVar(&f.hireCount, "hire-count", 0, "Number of hires")
	flags.Float64Var(&f.hireEmployeeGross, "hire-employee-gross", 0, "Monthly gross salary per hire")
	flags.Float64Var(&f.hireEmployerGross, "hire-employer-gross", 0, "Monthly employer cost per hire")
	flags.BoolVar(&f.hireStandardCost, "hire-standard-cost", true, "Derive employer cost from the gross salary")
	flags.Float64Var(&f.hireRecruitment, "hire-recruitment", 0, "Recruitment cost per hire")
	flags.Float64Var(&f.hireOnboarding, "hire-onboarding", 0, "Onboarding cost per hire")
	flags.Float64Var(&f.hireErrorCost, "hire-error-cost", 0, "New employee error cost per hire")
	flags.Float64Var(&f.hireBadRecruitment, "hire-bad-recruitment", 0, "Bad recruitment cost per hire")
	flags.Float64Var(&f.hireTeamExpansion, "hire-team-expansion", 0, "Team expansion cost per hire")
}

// changes builds the command for the flags set on cmd. Extension records start from base so
// that a single changed flag does not reset the rest of the record.
func (f *operationFlags) changes(cmd *cobra.Command, base domain.Operation) (report.OperationChanges, error) {
	var c report.OperationChanges
	set := cmd.Flags().Changed

	if set("name") {
		c.Name = &f.name
	}
	if set("category") {
		category := domain.Category(f.category)
		if !category.Valid() {
			return c, fmt.Errorf("invalid category %q, expected one of: %s", f.category, joinCategories())
		}
		c.Category = &category
	}
	if set("employees") {
		c.EmployeeCount = &f.employees
	}
	if set("rate") {
		c.AvgHourlyRate = &f.hourlyRate
	}
	if set("employer-cost") {
		c.EmployerCostEnabled = &f.employerCost
	}
	if set("frequency") {
		c.Frequency = &f.frequency
	}
	if set("frequency-unit") {
		unit := domain.FrequencyUnit(f.frequencyUnit)
		if unit.PerYear() == 0 {
			return c, fmt.Errorf("invalid frequency unit %q", f.frequencyUnit)
		}
		c.FrequencyUnit = &unit
	}
	if set("time") {
		c.TimePerExecution = &f.timePerExecution
	}
	if set("time-unit") {
		unit := domain.TimeUnit(f.timeUnit)
		if unit != domain.TimeMinutes && unit != domain.TimeHours {
			return c, fmt.Errorf("invalid time unit %q", f.timeUnit)
		}
		c.TimeUnit = &unit
	}
	if set("gain") {
		c.EfficiencyGain = &f.efficiencyGain
	}
	if set("difficulty") {
		c.ImplementationDifficulty = &f.difficulty
	}
	if set("automation") {
		c.AutomationPercent = &f.automationPercent
	}
	if set("human") {
		c.HumanInLoopPercent = &f.humanInLoopPercent
	}

	if set("loc") {
		c.LOCEnabled = &f.loc
	}
	if set("loc-action") {
		actions, err := parseLOCActions(f.locActions)
		if err != nil {
			return c, err
		}
		c.LOCActions = &actions
	}
	if set("loc-multiplier") {
		c.LOCMultiplier = &f.locMultiplier
	}

	if set("tokens") {
		c.TokenCostsEnabled = &f.tokens
	}
	if set("token-calls") || set("token-per-call") || set("token-input-price") ||
		set("token-output-price") || set("token-model") {
		var tc domain.TokenCosts
		if base.TokenCosts != nil {
			tc = *base.TokenCosts
		}
		if set("token-calls") {
			tc.MonthlyAPICalls = f.tokenCalls
		}
		if set("token-per-call") {
			tc.AvgTokensPerCall = f.tokensPerCall
		}
		if set("token-input-price") {
			tc.InputPricePerMToken = f.tokenInputPrice
		}
		if set("token-output-price") {
			tc.OutputPricePerMToken = f.tokenOutputPrice
		}
		if set("token-model") {
			tc.ModelName = f.tokenModel
		}
		c.TokenCosts = &tc
	}

	if set("hiring") {
		c.HiringEnabled = &f.hiring
	}
	if hiringChanged(set) {
		var h domain.HiringData
		if base.Hiring != nil {
			h = *base.Hiring
		}
		if set("hire-count") {
			h.Count = f.hireCount
		}
		if set("hire-employee-gross") {
			h.EmployeeGross = f.hireEmployeeGross
		}
		if set("hire-employer-gross") {
			h.EmployerGross = f.hireEmployerGross
		}
		if set("hire-standard-cost") {
			h.UseStandardEmployerCost = f.hireStandardCost
		}
		if set("hire-recruitment") {
			h.RecruitmentCost = f.hireRecruitment
		}
		if set("hire-onboarding") {
			h.OnboardingCost = f.hireOnboarding
		}
		if set("hire-error-cost") {
			h.NewEmployeeErrorCost = f.hireErrorCost
		}
		if set("hire-bad-recruitment") {
			h.BadRecruitmentCost = f.hireBadRecruitment
		}
		if set("hire-team-expansion") {
			h.TeamExpansionCost = f.hireTeamExpansion
		}
		c.Hiring = &h
	}

	return c, nil
}

func hiringChanged(set func(string) bool) bool {
	for _, name := range []string{
		"hire-count", "hire-employee-gross", "hire-employer-gross", "hire-standard-cost",
		"hire-recruitment", "hire-onboarding", "hire-error-cost", "hire-bad-recruitment",
		"hire-team-expansion",
	} {
		if set(name) {
			return true
		}
	}
	return false
}

func parseLOCActions(values []string) ([]domain.LOCAction, error) {
	actions := make([]domain.LOCAction, 0, len(values))
	for _, raw := range values {
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid loc action %q, expected name:events_per_month:cost_per_event", raw)
		}
		events, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid events per month in %q: %w", raw, err)
		}
		cost, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cost per event in %q: %w", raw, err)
		}
		actions = append(actions, domain.LOCAction{
			Name:            parts[0],
			EventsPerMonth:  events,
			AvgCostPerEvent: cost,
		})
	}
	return actions, nil
}

func joinCategories() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
