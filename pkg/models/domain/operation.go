package domain

type Category string

const (
	CategorySales      Category = "Sales"
	CategoryMarketing  Category = "Marketing"
	CategoryProduct    Category = "Product"
	CategoryOperations Category = "Operations"
	CategoryFinance    Category = "Finance"
	CategoryHR         Category = "HR"
	CategorySupport    Category = "Support"
	CategoryOther      Category = "Other"
)

var Categories = []Category{
	CategorySales,
	CategoryMarketing,
	CategoryProduct,
	CategoryOperations,
	CategoryFinance,
	CategoryHR,
	CategorySupport,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type FrequencyUnit string

const (
	FrequencyDay   FrequencyUnit = "day"
	FrequencyWeek  FrequencyUnit = "week"
	FrequencyMonth FrequencyUnit = "month"
	FrequencyYear  FrequencyUnit = "year"
)

// PerYear returns how many times a unit occurs in a working year.
func (u FrequencyUnit) PerYear() float64 {
	switch u {
	case FrequencyDay:
		return 252
	case FrequencyWeek:
		return 52
	case FrequencyMonth:
		return 12
	case FrequencyYear:
		return 1
	default:
		return 0
	}
}

type TimeUnit string

const (
	TimeMinutes TimeUnit = "minutes"
	TimeHours   TimeUnit = "hours"
)

// Hours converts an amount expressed in the unit into hours.
func (u TimeUnit) Hours(amount float64) float64 {
	if u == TimeMinutes {
		return amount / 60
	}
	return amount
}

// LOCAction is a recurring lost-opportunity cost event tied to an operation.
type LOCAction struct {
	Name            string
	EventsPerMonth  float64
	AvgCostPerEvent float64
}

type TokenCosts struct {
	MonthlyAPICalls      float64
	AvgTokensPerCall     float64
	InputPricePerMToken  float64 // currency per 1M input tokens
	OutputPricePerMToken float64 // currency per 1M output tokens
	ModelName            string
}

type HiringData struct {
	Count                   int
	EmployeeGross           float64 // monthly
	EmployerGross           float64 // monthly, used when UseStandardEmployerCost is false
	UseStandardEmployerCost bool
	RecruitmentCost         float64
	OnboardingCost          float64
	NewEmployeeErrorCost    float64
	BadRecruitmentCost      float64
	TeamExpansionCost       float64 // informational
}

// OneTimeCost is the sum of the four one-time hiring cost buckets.
func (h HiringData) OneTimeCost() float64 {
	return h.RecruitmentCost + h.OnboardingCost + h.NewEmployeeErrorCost + h.BadRecruitmentCost
}

// Operation is a manually performed, repeatable business activity evaluated for automation.
type Operation struct {
	ID       string
	Name     string
	Category Category

	EmployeeCount       int
	AvgHourlyRate       float64
	EmployerCostEnabled bool

	Frequency        float64
	FrequencyUnit    FrequencyUnit
	TimePerExecution float64
	TimeUnit         TimeUnit

	EfficiencyGain           float64 // 0..1
	ImplementationDifficulty int     // 1..10
	AutomationPercent        float64
	HumanInLoopPercent       float64

	LOCEnabled    bool
	LOCActions    []LOCAction
	LOCMultiplier float64 // recorded, not applied

	TokenCostsEnabled bool
	TokenCosts        *TokenCosts

	HiringEnabled bool
	Hiring        *HiringData
}

// Clone returns a deep copy so that slices and extension records are not shared.
func (o Operation) Clone() Operation {
	out := o
	if o.LOCActions != nil {
		out.LOCActions = make([]LOCAction, len(o.LOCActions))
		copy(out.LOCActions, o.LOCActions)
	}
	if o.TokenCosts != nil {
		tc := *o.TokenCosts
		out.TokenCosts = &tc
	}
	if o.Hiring != nil {
		h := *o.Hiring
		out.Hiring = &h
	}
	return out
}
