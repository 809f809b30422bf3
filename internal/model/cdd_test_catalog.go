package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LocalizedText maps a language code ("vi", "en") to text.
type LocalizedText map[string]string

// CDDTest is a catalog entry for a child developmental screening test.
type CDDTest struct {
	ID                     uint                              `gorm:"primarykey" json:"id"`
	AssessmentCode         string                            `json:"assessmentCode" gorm:"not null;uniqueIndex"`
	Names                  datatypes.JSONType[LocalizedText] `json:"names" gorm:"type:jsonb"`
	Descriptions           datatypes.JSONType[LocalizedText] `json:"descriptions" gorm:"type:jsonb"`
	Instructions           datatypes.JSONType[LocalizedText] `json:"instructions" gorm:"type:jsonb"`
	Category               string                            `json:"category" gorm:"index"`
	MinAgeMonths           *int                              `json:"minAgeMonths,omitempty"`
	MaxAgeMonths           *int                              `json:"maxAgeMonths,omitempty"`
	Status                 CDDTestStatus                     `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	Version                string                            `json:"version,omitempty"`
	EstimatedDuration      *int                              `json:"estimatedDuration,omitempty"` // minutes
	AdministrationType     AdministrationType                `json:"administrationType,omitempty" gorm:"type:varchar(32)"`
	RequiredQualifications string                            `json:"requiredQualifications,omitempty"`
	RequiredMaterials      datatypes.JSON                    `json:"requiredMaterials,omitempty" gorm:"type:jsonb"`
	Notes                  datatypes.JSON                    `json:"notes,omitempty" gorm:"type:jsonb"`
	Questions              datatypes.JSON                    `json:"questions,omitempty" gorm:"type:jsonb"`
	ScoringCriteria        datatypes.JSON                    `json:"scoringCriteria,omitempty" gorm:"type:jsonb"`
	CreatedAt              time.Time                         `json:"createdAt"`
	UpdatedAt              time.Time                         `json:"updatedAt"`
	DeletedAt              gorm.DeletedAt                    `gorm:"index" json:"-"`
}
