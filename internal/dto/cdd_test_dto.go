package dto

import (
	"time"

	"github.com/lshigami/meowcdd/internal/model"
	"gorm.io/datatypes"
)

type CDDTestRequestDTO struct {
	AssessmentCode         string              `json:"assessmentCode" binding:"required,max=64"`
	Names                  model.LocalizedText `json:"names" binding:"required,min=1"`
	Descriptions           model.LocalizedText `json:"descriptions"`
	Instructions           model.LocalizedText `json:"instructions"`
	Category               string              `json:"category"`
	MinAgeMonths           *int                `json:"minAgeMonths" binding:"omitempty,min=0"`
	MaxAgeMonths           *int                `json:"maxAgeMonths" binding:"omitempty,min=0"`
	Status                 string              `json:"status" binding:"omitempty,cdd_test_status"`
	Version                string              `json:"version"`
	EstimatedDuration      *int                `json:"estimatedDuration" binding:"omitempty,min=0"`
	AdministrationType     string              `json:"administrationType" binding:"omitempty,administration_type"`
	RequiredQualifications string              `json:"requiredQualifications"`
	RequiredMaterials      datatypes.JSON      `json:"requiredMaterials" swaggertype:"object"`
	Notes                  datatypes.JSON      `json:"notes" swaggertype:"object"`
	Questions              datatypes.JSON      `json:"questions" swaggertype:"object"`
	ScoringCriteria        datatypes.JSON      `json:"scoringCriteria" swaggertype:"object"`
}

type CDDTestResponseDTO struct {
	ID                     uint                     `json:"id"`
	AssessmentCode         string                   `json:"assessmentCode"`
	Names                  model.LocalizedText      `json:"names" copier:"-"`
	Descriptions           model.LocalizedText      `json:"descriptions,omitempty" copier:"-"`
	Instructions           model.LocalizedText      `json:"instructions,omitempty" copier:"-"`
	Category               string                   `json:"category,omitempty"`
	MinAgeMonths           *int                     `json:"minAgeMonths,omitempty"`
	MaxAgeMonths           *int                     `json:"maxAgeMonths,omitempty"`
	Status                 model.CDDTestStatus      `json:"status" swaggertype:"string"`
	Version                string                   `json:"version,omitempty"`
	EstimatedDuration      *int                     `json:"estimatedDuration,omitempty"`
	AdministrationType     model.AdministrationType `json:"administrationType,omitempty" swaggertype:"string"`
	RequiredQualifications string                   `json:"requiredQualifications,omitempty"`
	RequiredMaterials      datatypes.JSON           `json:"requiredMaterials,omitempty" swaggertype:"object"`
	Notes                  datatypes.JSON           `json:"notes,omitempty" swaggertype:"object"`
	Questions              datatypes.JSON           `json:"questions,omitempty" swaggertype:"object"`
	ScoringCriteria        datatypes.JSON           `json:"scoringCriteria,omitempty" swaggertype:"object"`
	CreatedAt              time.Time                `json:"createdAt"`
	UpdatedAt              time.Time                `json:"updatedAt"`
}

type CDDTestQuery struct {
	Status    string `form:"status" binding:"omitempty,cdd_test_status"`
	Category  string `form:"category"`
	AgeMonths *int   `form:"ageMonths" binding:"omitempty,min=0"`
}

type CountResponseDTO struct {
	Count int64 `json:"count"`
}
