package dto

import (
	"time"

	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/scoring"
	"gorm.io/datatypes"
)

// ChildTestRecordRequestDTO is used for create and full replace (PUT).
// percentageScore and resultLevel are accepted but always recomputed by the server.
type ChildTestRecordRequestDTO struct {
	ExternalID       string         `json:"externalId" binding:"omitempty,max=255"`
	ChildID          uint           `json:"childId" binding:"required"`
	TestID           uint           `json:"testId" binding:"required"`
	TestType         string         `json:"testType" binding:"required,test_type"`
	TestDate         *time.Time     `json:"testDate"`
	StartTime        *time.Time     `json:"startTime"`
	EndTime          *time.Time     `json:"endTime"`
	Status           string         `json:"status" binding:"omitempty,record_status"`
	TotalScore       *float64       `json:"totalScore"`
	MaxScore         *float64       `json:"maxScore"`
	PercentageScore  *float64       `json:"percentageScore" swaggerignore:"true"`
	ResultLevel      *string        `json:"resultLevel" swaggerignore:"true"`
	Interpretation   string         `json:"interpretation"`
	QuestionAnswers  datatypes.JSON `json:"questionAnswers" swaggertype:"object"`
	CorrectAnswers   *int           `json:"correctAnswers" binding:"omitempty,min=0"`
	TotalQuestions   *int           `json:"totalQuestions" binding:"omitempty,min=0"`
	SkippedQuestions *int           `json:"skippedQuestions" binding:"omitempty,min=0"`
	Notes            string         `json:"notes"`
	Environment      string         `json:"environment"`
	Assessor         string         `json:"assessor"`
	ParentPresent    *bool          `json:"parentPresent"`
}

// ChildTestRecordPatchDTO carries a partial update; nil fields are left untouched.
type ChildTestRecordPatchDTO struct {
	ExternalID       *string        `json:"externalId" binding:"omitempty,min=1,max=255"`
	ChildID          *uint          `json:"childId" binding:"omitempty,min=1"`
	TestID           *uint          `json:"testId" binding:"omitempty,min=1"`
	TestType         *string        `json:"testType" binding:"omitempty,test_type"`
	TestDate         *time.Time     `json:"testDate"`
	StartTime        *time.Time     `json:"startTime"`
	EndTime          *time.Time     `json:"endTime"`
	Status           *string        `json:"status" binding:"omitempty,record_status"`
	TotalScore       *float64       `json:"totalScore"`
	MaxScore         *float64       `json:"maxScore"`
	PercentageScore  *float64       `json:"percentageScore" swaggerignore:"true"`
	ResultLevel      *string        `json:"resultLevel" swaggerignore:"true"`
	Interpretation   *string        `json:"interpretation"`
	QuestionAnswers  datatypes.JSON `json:"questionAnswers" swaggertype:"object"`
	CorrectAnswers   *int           `json:"correctAnswers" binding:"omitempty,min=0"`
	TotalQuestions   *int           `json:"totalQuestions" binding:"omitempty,min=0"`
	SkippedQuestions *int           `json:"skippedQuestions" binding:"omitempty,min=0"`
	Notes            *string        `json:"notes"`
	Environment      *string        `json:"environment"`
	Assessor         *string        `json:"assessor"`
	ParentPresent    *bool          `json:"parentPresent"`
}

type ChildTestRecordResponseDTO struct {
	ID               uint                 `json:"id"`
	ExternalID       string               `json:"externalId"`
	ChildID          uint                 `json:"childId"`
	TestID           uint                 `json:"testId"`
	TestType         model.TestType       `json:"testType" swaggertype:"string" enums:"CDD_TEST,ASSESSMENT_TEST"`
	TestDate         time.Time            `json:"testDate"`
	StartTime        *time.Time           `json:"startTime"`
	EndTime          *time.Time           `json:"endTime"`
	DurationMinutes  *int                 `json:"durationMinutes" copier:"-"`
	Status           model.RecordStatus   `json:"status" swaggertype:"string" enums:"IN_PROGRESS,COMPLETED,ABANDONED,INVALID,REVIEWED"`
	TotalScore       *float64             `json:"totalScore"`
	MaxScore         *float64             `json:"maxScore"`
	PercentageScore  *float64             `json:"percentageScore"`
	ResultLevel      *scoring.ResultLevel `json:"resultLevel" swaggertype:"string" enums:"EXCELLENT,GOOD,AVERAGE,BELOW_AVERAGE,POOR"`
	Interpretation   string               `json:"interpretation,omitempty"`
	QuestionAnswers  datatypes.JSON       `json:"questionAnswers,omitempty" swaggertype:"object"`
	CorrectAnswers   *int                 `json:"correctAnswers,omitempty"`
	TotalQuestions   *int                 `json:"totalQuestions,omitempty"`
	SkippedQuestions *int                 `json:"skippedQuestions,omitempty"`
	Notes            string               `json:"notes,omitempty"`
	Environment      string               `json:"environment,omitempty"`
	Assessor         string               `json:"assessor,omitempty"`
	ParentPresent    *bool                `json:"parentPresent,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// ChildTestRecordQuery holds the optional list filters.
type ChildTestRecordQuery struct {
	ChildID       *uint      `form:"childId"`
	TestID        *uint      `form:"testId"`
	TestType      string     `form:"testType" binding:"omitempty,test_type"`
	Status        string     `form:"status" binding:"omitempty,record_status"`
	ResultLevel   string     `form:"resultLevel" binding:"omitempty,result_level"`
	Assessor      string     `form:"assessor"`
	Environment   string     `form:"environment"`
	ParentPresent *bool      `form:"parentPresent"`
	From          *time.Time `form:"from"`
	To            *time.Time `form:"to"`
	MinScore      *float64   `form:"minScore"`
	MaxScore      *float64   `form:"maxScore"`
}

// ChildTestSummaryDTO aggregates a child's COMPLETED records.
type ChildTestSummaryDTO struct {
	ChildID        uint       `json:"childId"`
	CompletedCount int64      `json:"completedCount"`
	AverageScore   *float64   `json:"averageScore"`
	LastTestDate   *time.Time `json:"lastTestDate"`
}

type ExistsResponseDTO struct {
	Exists bool `json:"exists"`
}
