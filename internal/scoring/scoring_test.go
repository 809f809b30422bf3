package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name  string
		total *float64
		max   *float64
		want  *float64
	}{
		{"regular", f(8), f(10), f(80)},
		{"full marks", f(10), f(10), f(100)},
		{"above max is not clamped", f(15), f(10), f(150)},
		{"negative total", f(-2), f(10), f(-20)},
		{"nil total", nil, f(10), nil},
		{"nil max", f(5), nil, nil},
		{"both nil", nil, nil, nil},
		{"zero max", f(5), f(0), nil},
		{"negative max", f(5), f(-10), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePercentage(tt.total, tt.max)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestComputePercentage_NoRounding(t *testing.T) {
	one, three := 1.0, 3.0
	want := (one / three) * 100

	got := ComputePercentage(&one, &three)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
	assert.Equal(t, 33.33333333333333, *got)
}

func TestClassifyResult(t *testing.T) {
	tests := []struct {
		percentage float64
		want       ResultLevel
	}{
		{100, ResultExcellent},
		{90, ResultExcellent},
		{89.999, ResultGood},
		{80, ResultGood},
		{79.999, ResultAverage},
		{70, ResultAverage},
		{69.999, ResultBelowAverage},
		{60, ResultBelowAverage},
		{59.999, ResultPoor},
		{0, ResultPoor},
		{-5, ResultPoor},
		{150, ResultExcellent},
	}
	for _, tt := range tests {
		got := ClassifyResult(f(tt.percentage))
		require.NotNil(t, got, "percentage %v", tt.percentage)
		assert.Equal(t, tt.want, *got, "percentage %v", tt.percentage)
	}
}

func TestClassifyResult_Nil(t *testing.T) {
	assert.Nil(t, ClassifyResult(nil))
}

func TestDerive(t *testing.T) {
	d := Derive(f(8), f(10))
	require.NotNil(t, d.PercentageScore)
	require.NotNil(t, d.ResultLevel)
	assert.Equal(t, 80.0, *d.PercentageScore)
	assert.Equal(t, ResultGood, *d.ResultLevel)

	again := Derive(f(8), f(10))
	assert.Equal(t, *d.PercentageScore, *again.PercentageScore)
	assert.Equal(t, *d.ResultLevel, *again.ResultLevel)

	empty := Derive(f(5), f(0))
	assert.Nil(t, empty.PercentageScore)
	assert.Nil(t, empty.ResultLevel)
}

func TestComputeDurationMinutes(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("missing bounds", func(t *testing.T) {
		end := start.Add(time.Minute)
		assert.Nil(t, ComputeDurationMinutes(nil, &end))
		assert.Nil(t, ComputeDurationMinutes(&start, nil))
		assert.Nil(t, ComputeDurationMinutes(nil, nil))
	})

	t.Run("truncates", func(t *testing.T) {
		end := start.Add(125 * time.Second)
		got := ComputeDurationMinutes(&start, &end)
		require.NotNil(t, got)
		assert.Equal(t, 2, *got)
	})

	t.Run("sub-second remainder ignored", func(t *testing.T) {
		end := start.Add(59*time.Second + 900*time.Millisecond)
		got := ComputeDurationMinutes(&start, &end)
		require.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})

	t.Run("negative sub-second remainder floors the seconds", func(t *testing.T) {
		end := start.Add(-59*time.Second - 500*time.Millisecond)
		got := ComputeDurationMinutes(&start, &end)
		require.NotNil(t, got)
		assert.Equal(t, -1, *got)
	})

	t.Run("negative under a minute truncates", func(t *testing.T) {
		end := start.Add(-30 * time.Second)
		got := ComputeDurationMinutes(&start, &end)
		require.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})

	t.Run("end before start", func(t *testing.T) {
		end := start.Add(-3 * time.Minute)
		got := ComputeDurationMinutes(&start, &end)
		require.NotNil(t, got)
		assert.Equal(t, -3, *got)
	})
}

func TestResultLevel_Rank(t *testing.T) {
	levels := ResultLevels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i-1].Rank(), levels[i].Rank())
	}
	assert.False(t, ResultLevel("SUPERB").Valid())
	assert.Equal(t, 0, ResultLevel("SUPERB").Rank())
	assert.Equal(t, "Tốt", ResultGood.DisplayName())
}
