package domain

import "time"

// CostBreakdown splits the transformation budget. Values are percentages and are not
// required to sum to 100.
type CostBreakdown struct {
	People  float64
	Process float64
	Tech    float64
}

type GlobalSettings struct {
	Language                 string
	InflationRate            float64
	ProjectStart             time.Time
	ProjectEnd               time.Time
	EstTransformationCost    float64 // when > 0, allocated across operations
	MinTransformationCost    float64
	ImplementationDays       int
	TransformationCostFactor float64 // share of annual labor cost used as investment
	Breakdown                CostBreakdown
}

// Report is the root aggregate: client info, settings and the operations evaluated together.
type Report struct {
	ID           string
	ReportNumber string
	ReportDate   time.Time
	ClientName   string
	Currency     string
	Settings     GlobalSettings
	Operations   []Operation
}

func (r Report) Clone() Report {
	out := r
	if r.Operations != nil {
		out.Operations = make([]Operation, len(r.Operations))
		for i, op := range r.Operations {
			out.Operations[i] = op.Clone()
		}
	}
	return out
}

// FindOperation returns the index of the operation with the given id or -1.
func (r Report) FindOperation(id string) int {
	for i, op := range r.Operations {
		if op.ID == id {
			return i
		}
	}
	return -1
}
