package model

import (
	"time"

	"github.com/lshigami/meowcdd/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChildTestRecord is one child's attempt at one test.
// PercentageScore and ResultLevel are derived from TotalScore and MaxScore; use ApplyScoring.
type ChildTestRecord struct {
	ID               uint                 `gorm:"primarykey" json:"id"`
	ExternalID       string               `json:"externalId" gorm:"not null;uniqueIndex"`
	ChildID          uint                 `json:"childId" gorm:"not null;index"`
	TestID           uint                 `json:"testId" gorm:"not null;index"`
	TestType         TestType             `json:"testType" gorm:"type:varchar(32);not null"`
	TestDate         time.Time            `json:"testDate" gorm:"not null;index"`
	StartTime        *time.Time           `json:"startTime,omitempty"`
	EndTime          *time.Time           `json:"endTime,omitempty"`
	Status           RecordStatus         `json:"status" gorm:"type:varchar(32);not null;default:'IN_PROGRESS';index"`
	TotalScore       *float64             `json:"totalScore"`
	MaxScore         *float64             `json:"maxScore"`
	PercentageScore  *float64             `json:"percentageScore"`
	ResultLevel      *scoring.ResultLevel `json:"resultLevel" gorm:"type:varchar(32);index"`
	Interpretation   string               `json:"interpretation,omitempty" gorm:"type:text"`
	QuestionAnswers  datatypes.JSON       `json:"questionAnswers,omitempty" gorm:"type:jsonb"`
	CorrectAnswers   *int                 `json:"correctAnswers,omitempty"`
	TotalQuestions   *int                 `json:"totalQuestions,omitempty"`
	SkippedQuestions *int                 `json:"skippedQuestions,omitempty"`
	Notes            string               `json:"notes,omitempty" gorm:"type:text"`
	Environment      string               `json:"environment,omitempty"` // HOME, CLINIC, SCHOOL
	Assessor         string               `json:"assessor,omitempty" gorm:"index"`
	ParentPresent    *bool                `json:"parentPresent,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt       `gorm:"index" json:"-"`
}

// ApplyScoring overwrites both derived fields from the current raw scores.
func (r *ChildTestRecord) ApplyScoring() {
	d := scoring.Derive(r.TotalScore, r.MaxScore)
	r.PercentageScore = d.PercentageScore
	r.ResultLevel = d.ResultLevel
}

// ApplyCreateDefaults fills status and test date when the caller left them empty.
func (r *ChildTestRecord) ApplyCreateDefaults(now time.Time) {
	if r.Status == "" {
		r.Status = RecordStatusInProgress
	}
	if r.TestDate.IsZero() {
		r.TestDate = now
	}
}

// DurationMinutes is the whole minutes between StartTime and EndTime, if both are set.
func (r *ChildTestRecord) DurationMinutes() *int {
	return scoring.ComputeDurationMinutes(r.StartTime, r.EndTime)
}

func (r *ChildTestRecord) IsCompleted() bool {
	return r.Status == RecordStatusCompleted
}
