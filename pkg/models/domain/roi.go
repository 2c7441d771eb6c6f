package domain

// PaybackNever marks a payback period that cannot be reached.
const PaybackNever = 99.0

// ROIResult is derived from an operation and its report settings. It is never persisted.
type ROIResult struct {
	ROIPercent1Y    float64
	ROIPercent3Y    float64
	ROIValue1Y      float64
	ROIValue3Y      float64
	PaybackMonths   float64 // 0..99
	TotalInvestment float64
}

// Summary aggregates costs and ROI across every operation in a report.
type Summary struct {
	CurrentCost float64
	FutureCost  float64
	Savings     float64
	Investment  float64
	ROI1Y       float64
	ROI3Y       float64
}

// OperationResult is a per-operation row of derived values.
type OperationResult struct {
	OperationID    string
	Name           string
	Category       Category
	LaborAnnual    float64
	LOCAnnual      float64
	TokenAnnual    float64
	CurrentCost    float64
	FutureCost     float64
	AnnualSavings  float64
	Transformation float64
	ROI            ROIResult
}
