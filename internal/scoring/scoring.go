package scoring

import "time"

// ResultLevel is the ordinal classification of a percentage score.
type ResultLevel string

const (
	ResultExcellent    ResultLevel = "EXCELLENT"
	ResultGood         ResultLevel = "GOOD"
	ResultAverage      ResultLevel = "AVERAGE"
	ResultBelowAverage ResultLevel = "BELOW_AVERAGE"
	ResultPoor         ResultLevel = "POOR"
)

// Lower bounds of each band, inclusive.
const (
	ExcellentThreshold    = 90.0
	GoodThreshold         = 80.0
	AverageThreshold      = 70.0
	BelowAverageThreshold = 60.0
)

var resultLevelRanks = map[ResultLevel]int{
	ResultPoor:         1,
	ResultBelowAverage: 2,
	ResultAverage:      3,
	ResultGood:         4,
	ResultExcellent:    5,
}

var resultLevelNames = map[ResultLevel]string{
	ResultExcellent:    "Xuất sắc",
	ResultGood:         "Tốt",
	ResultAverage:      "Trung bình",
	ResultBelowAverage: "Dưới trung bình",
	ResultPoor:         "Kém",
}

// ResultLevels lists every level from highest to lowest.
func ResultLevels() []ResultLevel {
	return []ResultLevel{ResultExcellent, ResultGood, ResultAverage, ResultBelowAverage, ResultPoor}
}

func (l ResultLevel) Valid() bool {
	_, ok := resultLevelRanks[l]
	return ok
}

// Rank orders levels so that a higher rank is a better result. Unknown levels rank 0.
func (l ResultLevel) Rank() int {
	return resultLevelRanks[l]
}

func (l ResultLevel) DisplayName() string {
	return resultLevelNames[l]
}

// DerivedScoring groups the fields that are always recomputed from (total, max).
// Callers assign it wholesale so the two values never drift apart.
type DerivedScoring struct {
	PercentageScore *float64
	ResultLevel     *ResultLevel
}

// ComputePercentage returns (total/max)*100, or nil when either input is missing
// or max is not positive. The value is not rounded.
func ComputePercentage(total, max *float64) *float64 {
	if total == nil || max == nil || *max <= 0 {
		return nil
	}
	p := (*total / *max) * 100
	return &p
}

// ClassifyResult maps a percentage onto a ResultLevel. Values above 100 and
// below 0 are not clamped.
func ClassifyResult(percentage *float64) *ResultLevel {
	if percentage == nil {
		return nil
	}
	var level ResultLevel
	switch p := *percentage; {
	case p >= ExcellentThreshold:
		level = ResultExcellent
	case p >= GoodThreshold:
		level = ResultGood
	case p >= AverageThreshold:
		level = ResultAverage
	case p >= BelowAverageThreshold:
		level = ResultBelowAverage
	default:
		level = ResultPoor
	}
	return &level
}

// Derive computes both derived fields from the raw scores.
func Derive(total, max *float64) DerivedScoring {
	percentage := ComputePercentage(total, max)
	return DerivedScoring{
		PercentageScore: percentage,
		ResultLevel:     ClassifyResult(percentage),
	}
}

// ComputeDurationMinutes returns the whole minutes between start and end.
// Seconds are floored, then divided by 60 truncating toward zero.
// end before start yields a negative value; it is not treated as an error.
func ComputeDurationMinutes(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	d := end.Sub(*start)
	seconds := int64(d / time.Second)
	if d%time.Second < 0 {
		seconds--
	}
	minutes := int(seconds / 60)
	return &minutes
}
