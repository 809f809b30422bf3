package dto

import "time"

// ChildRequestDTO is used for create and full replace. Dates use YYYY-MM-DD.
type ChildRequestDTO struct {
	ParentID                       string   `json:"parentId" binding:"required"`
	FullName                       string   `json:"fullName" binding:"required,max=255"`
	Gender                         string   `json:"gender" binding:"required,gender"`
	DateOfBirth                    string   `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	IsPremature                    *bool    `json:"isPremature"`
	GestationalWeek                *int     `json:"gestationalWeek" binding:"omitempty,min=20,max=45"`
	BirthWeightGrams               *int     `json:"birthWeightGrams" binding:"omitempty,min=0"`
	SpecialMedicalConditions       string   `json:"specialMedicalConditions"`
	DevelopmentalDisorderDiagnosis string   `json:"developmentalDisorderDiagnosis" binding:"omitempty,disorder_diagnosis"`
	HasEarlyIntervention           *bool    `json:"hasEarlyIntervention"`
	EarlyInterventionDetails       string   `json:"earlyInterventionDetails"`
	PrimaryLanguage                string   `json:"primaryLanguage"`
	FamilyDevelopmentalIssues      string   `json:"familyDevelopmentalIssues"`
	Height                         *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight                         *float64 `json:"weight" binding:"omitempty,gt=0"`
	BloodType                      string   `json:"bloodType"`
	Allergies                      string   `json:"allergies"`
	MedicalHistory                 string   `json:"medicalHistory"`
	Status                         string   `json:"status" binding:"omitempty,child_status"`
}

type ChildResponseDTO struct {
	ID                             uint      `json:"id"`
	ParentID                       string    `json:"parentId"`
	FullName                       string    `json:"fullName"`
	Gender                         string    `json:"gender" copier:"-"`
	DateOfBirth                    string    `json:"dateOfBirth" copier:"-"`
	CurrentAgeMonths               *int      `json:"currentAgeMonths"`
	IsPremature                    *bool     `json:"isPremature,omitempty"`
	GestationalWeek                *int      `json:"gestationalWeek,omitempty"`
	BirthWeightGrams               *int      `json:"birthWeightGrams,omitempty"`
	SpecialMedicalConditions       string    `json:"specialMedicalConditions,omitempty"`
	DevelopmentalDisorderDiagnosis string    `json:"developmentalDisorderDiagnosis,omitempty" copier:"-"`
	HasEarlyIntervention           *bool     `json:"hasEarlyIntervention,omitempty"`
	EarlyInterventionDetails       string    `json:"earlyInterventionDetails,omitempty"`
	PrimaryLanguage                string    `json:"primaryLanguage,omitempty"`
	FamilyDevelopmentalIssues      string    `json:"familyDevelopmentalIssues,omitempty"`
	Height                         *float64  `json:"height,omitempty"`
	Weight                         *float64  `json:"weight,omitempty"`
	BloodType                      string    `json:"bloodType,omitempty"`
	Allergies                      string    `json:"allergies,omitempty"`
	MedicalHistory                 string    `json:"medicalHistory,omitempty"`
	RegistrationDate               time.Time `json:"registrationDate"`
	Status                         string    `json:"status" copier:"-"`
	CreatedAt                      time.Time `json:"createdAt"`
	UpdatedAt                      time.Time `json:"updatedAt"`
}

type ChildQuery struct {
	ParentID string `form:"parentId"`
	Name     string `form:"name"`
	Gender   string `form:"gender" binding:"omitempty,gender"`
	Status   string `form:"status" binding:"omitempty,child_status"`
	MinAge   *int   `form:"minAgeMonths" binding:"omitempty,min=0"`
	MaxAge   *int   `form:"maxAgeMonths" binding:"omitempty,min=0"`
}
