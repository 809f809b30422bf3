package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lshigami/meowcdd/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCDDTest_LocalizedFields(t *testing.T) {
	test := CDDTest{
		AssessmentCode: "ASQ-3",
		Names:          datatypes.NewJSONType(LocalizedText{"vi": "Bảng hỏi", "en": "Questionnaire"}),
		Status:         CDDTestStatusActive,
	}

	value, err := test.Names.Value()
	require.NoError(t, err)
	raw, ok := value.([]byte)
	require.True(t, ok)

	var decoded LocalizedText
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Questionnaire", decoded["en"])
	assert.Equal(t, "Bảng hỏi", test.Names.Data()["vi"])
}

func TestChildTestRecord_ApplyScoring(t *testing.T) {
	total, maxScore := 7.0, 10.0
	record := ChildTestRecord{TotalScore: &total, MaxScore: &maxScore}
	record.ApplyScoring()
	require.NotNil(t, record.ResultLevel)
	assert.Equal(t, scoring.ResultAverage, *record.ResultLevel)

	record.MaxScore = nil
	record.ApplyScoring()
	assert.Nil(t, record.PercentageScore)
	assert.Nil(t, record.ResultLevel)
}

func TestChildTestRecord_ApplyCreateDefaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	var record ChildTestRecord
	record.ApplyCreateDefaults(now)
	assert.Equal(t, RecordStatusInProgress, record.Status)
	assert.Equal(t, now, record.TestDate)
}
