package model

import (
	"time"

	"gorm.io/gorm"
)

type Child struct {
	ID                        uint              `gorm:"primarykey" json:"id"`
	ParentID                  string            `json:"parentId" gorm:"not null;index"`
	FullName                  string            `json:"fullName" gorm:"not null"`
	Gender                    Gender            `json:"gender" gorm:"type:varchar(16);not null"`
	DateOfBirth               time.Time         `json:"dateOfBirth" gorm:"type:date;not null"`
	CurrentAgeMonths          *int              `json:"currentAgeMonths,omitempty" gorm:"index"`
	IsPremature               *bool             `json:"isPremature,omitempty"`
	GestationalWeek           *int              `json:"gestationalWeek,omitempty"`
	BirthWeightGrams          *int              `json:"birthWeightGrams,omitempty"`
	SpecialMedicalConditions  string            `json:"specialMedicalConditions,omitempty" gorm:"type:text"`
	DevelopmentalDisorderDiag DisorderDiagnosis `json:"developmentalDisorderDiagnosis,omitempty" gorm:"column:developmental_disorder_diagnosis;type:varchar(32)"`
	HasEarlyIntervention      *bool             `json:"hasEarlyIntervention,omitempty"`
	EarlyInterventionDetails  string            `json:"earlyInterventionDetails,omitempty" gorm:"type:text"`
	PrimaryLanguage           string            `json:"primaryLanguage,omitempty"`
	FamilyDevelopmentalIssues string            `json:"familyDevelopmentalIssues,omitempty" gorm:"type:text"`
	Height                    *float64          `json:"height,omitempty"` // cm
	Weight                    *float64          `json:"weight,omitempty"` // kg
	BloodType                 string            `json:"bloodType,omitempty"`
	Allergies                 string            `json:"allergies,omitempty" gorm:"type:text"`
	MedicalHistory            string            `json:"medicalHistory,omitempty" gorm:"type:text"`
	RegistrationDate          time.Time         `json:"registrationDate" gorm:"not null"`
	Status                    ChildStatus       `json:"status" gorm:"type:varchar(16);not null;default:'ACTIVE';index"`
	CreatedAt                 time.Time         `json:"createdAt"`
	UpdatedAt                 time.Time         `json:"updatedAt"`
	DeletedAt                 gorm.DeletedAt    `gorm:"index" json:"-"`
}

// AgeInMonths counts complete months between dob and now.
func AgeInMonths(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	months := int(now.Month()) - int(dob.Month())
	if now.Day() < dob.Day() {
		months--
	}
	return years*12 + months
}

// RefreshAge recomputes CurrentAgeMonths from DateOfBirth.
func (c *Child) RefreshAge(now time.Time) {
	if c.DateOfBirth.IsZero() {
		c.CurrentAgeMonths = nil
		return
	}
	age := AgeInMonths(c.DateOfBirth, now)
	c.CurrentAgeMonths = &age
}

func (c *Child) ApplyCreateDefaults(now time.Time) {
	if c.RegistrationDate.IsZero() {
		c.RegistrationDate = now
	}
	if c.Status == "" {
		c.Status = ChildStatusActive
	}
}
