package roi

import (
	"math"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
)

const (
	DefaultEmployerCostMultiplier = 1.204
	DefaultInputTokenShare        = 0.7

	tokensPerPricingUnit = 1_000_000
	monthsPerYear        = 12
)

// Params holds the constants the formulas depend on.
type Params struct {
	EmployerCostMultiplier float64
	// InputTokenShare is the fraction of tokens billed at the input price; the rest are output.
	InputTokenShare float64
}

func DefaultParams() Params {
	return Params{
		EmployerCostMultiplier: DefaultEmployerCostMultiplier,
		InputTokenShare:        DefaultInputTokenShare,
	}
}

// Calculator derives annual costs, investments and ROI figures. All methods are pure.
type Calculator struct {
	params Params
}

// NewCalculator falls back to defaults for params outside their valid range.
func NewCalculator(params Params) *Calculator {
	if !(params.EmployerCostMultiplier > 0) {
		params.EmployerCostMultiplier = DefaultEmployerCostMultiplier
	}
	if !(params.InputTokenShare >= 0 && params.InputTokenShare <= 1) {
		params.InputTokenShare = DefaultInputTokenShare
	}
	return &Calculator{params: params}
}

func (c *Calculator) Params() Params {
	return c.params
}

// OpAnnual is the yearly manual labor cost of an operation.
func (c *Calculator) OpAnnual(op domain.Operation) float64 {
	if op.Frequency <= 0 || op.TimePerExecution <= 0 {
		return 0
	}
	executions := op.Frequency * op.FrequencyUnit.PerYear()
	hours := op.TimeUnit.Hours(op.TimePerExecution)

	cost := executions * hours * op.AvgHourlyRate * float64(op.EmployeeCount)
	if op.EmployerCostEnabled {
		cost *= c.params.EmployerCostMultiplier
	}
	return nonNegative(cost)
}

func (c *Calculator) LOCAnnual(op domain.Operation) float64 {
	if !op.LOCEnabled || len(op.LOCActions) == 0 {
		return 0
	}
	var total float64
	for _, action := range op.LOCActions {
		total += action.EventsPerMonth * monthsPerYear * action.AvgCostPerEvent
	}
	return nonNegative(total)
}

func (c *Calculator) TokenCostsAnnual(op domain.Operation) float64 {
	if !op.TokenCostsEnabled || op.TokenCosts == nil {
		return 0
	}
	tc := op.TokenCosts
	totalTokens := tc.MonthlyAPICalls * monthsPerYear * tc.AvgTokensPerCall
	inputTokens := totalTokens * c.params.InputTokenShare
	outputTokens := totalTokens * (1 - c.params.InputTokenShare)

	cost := inputTokens/tokensPerPricingUnit*tc.InputPricePerMToken +
		outputTokens/tokensPerPricingUnit*tc.OutputPricePerMToken
	return nonNegative(cost)
}

// AnnualCost is the current-state baseline: labor, lost opportunity and token spend.
func (c *Calculator) AnnualCost(op domain.Operation) float64 {
	return finite(c.OpAnnual(op) + c.LOCAnnual(op) + c.TokenCostsAnnual(op))
}

// FutureCost is the yearly cost after automation. Efficiency gain reduces labor and LOC
// but token spend is kept whole, inference does not go away with automation.
func (c *Calculator) FutureCost(op domain.Operation) float64 {
	remaining := 1 - op.EfficiencyGain
	future := c.OpAnnual(op)*remaining + c.LOCAnnual(op)*remaining + c.TokenCostsAnnual(op)
	return finite(future + c.hiringAnnual(op))
}

func (c *Calculator) hiringAnnual(op domain.Operation) float64 {
	if !op.HiringEnabled || op.Hiring == nil {
		return 0
	}
	h := op.Hiring
	employer := h.EmployerGross
	if h.UseStandardEmployerCost {
		employer = h.EmployeeGross * c.params.EmployerCostMultiplier
	}
	return finite((h.EmployeeGross + employer) * monthsPerYear * float64(h.Count))
}

func (c *Calculator) hiringInvestment(op domain.Operation) float64 {
	if !op.HiringEnabled || op.Hiring == nil {
		return 0
	}
	return op.Hiring.OneTimeCost()
}

// TransformationInvestment attributes automation investment to one operation of the report.
// An explicit report-level total is split in proportion to labor cost, otherwise the
// operation's labor cost is scaled by the settings factor.
func (c *Calculator) TransformationInvestment(op domain.Operation, report domain.Report) float64 {
	settings := report.Settings
	opAnnual := c.OpAnnual(op)
	if settings.EstTransformationCost <= 0 {
		return finite(opAnnual * settings.TransformationCostFactor)
	}

	var total float64
	for _, other := range report.Operations {
		total = finite(total + c.OpAnnual(other))
	}
	share := 1.0
	if total > 0 {
		share = opAnnual / total
	}
	return finite(share * settings.EstTransformationCost)
}

func (c *Calculator) ROI(op domain.Operation, report domain.Report) domain.ROIResult {
	savings := finite(c.AnnualCost(op) - c.FutureCost(op))
	investment := finite(c.hiringInvestment(op) + c.TransformationInvestment(op, report))

	value1Y := finite(savings - investment)
	value3Y := finite(savings*3 - investment)

	return domain.ROIResult{
		ROIPercent1Y:    percentOf(value1Y, investment),
		ROIPercent3Y:    percentOf(value3Y, investment),
		ROIValue1Y:      value1Y,
		ROIValue3Y:      value3Y,
		PaybackMonths:   paybackMonths(investment, savings),
		TotalInvestment: investment,
	}
}

// Summary folds the engine over every operation of the report. Sums that overflow
// collapse to zero, no field is ever NaN or infinite.
func (c *Calculator) Summary(report domain.Report) domain.Summary {
	var s domain.Summary
	for _, op := range report.Operations {
		s.CurrentCost = finite(s.CurrentCost + c.AnnualCost(op))
		s.FutureCost = finite(s.FutureCost + c.FutureCost(op))
		s.Investment = finite(s.Investment + c.TransformationInvestment(op, report))
	}
	s.Savings = finite(s.CurrentCost - s.FutureCost)
	s.ROI1Y = percentOf(s.Savings-s.Investment, s.Investment)
	s.ROI3Y = percentOf(s.Savings*3-s.Investment, s.Investment)
	return s
}

// Results returns one row per operation, in report order.
func (c *Calculator) Results(report domain.Report) []domain.OperationResult {
	results := make([]domain.OperationResult, 0, len(report.Operations))
	for _, op := range report.Operations {
		current := c.AnnualCost(op)
		future := c.FutureCost(op)
		results = append(results, domain.OperationResult{
			OperationID:    op.ID,
			Name:           op.Name,
			Category:       op.Category,
			LaborAnnual:    c.OpAnnual(op),
			LOCAnnual:      c.LOCAnnual(op),
			TokenAnnual:    c.TokenCostsAnnual(op),
			CurrentCost:    current,
			FutureCost:     future,
			AnnualSavings:  finite(current - future),
			Transformation: c.TransformationInvestment(op, report),
			ROI:            c.ROI(op, report),
		})
	}
	return results
}

func percentOf(value, investment float64) float64 {
	if investment <= 0 {
		return 0
	}
	return finite(value / investment * 100)
}

func paybackMonths(investment, annualSavings float64) float64 {
	if annualSavings <= 0 {
		return domain.PaybackNever
	}
	months := investment / (annualSavings / monthsPerYear)
	if math.IsNaN(months) {
		return domain.PaybackNever
	}
	return math.Min(math.Max(months, 0), domain.PaybackNever)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return finite(v)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
