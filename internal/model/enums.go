package model

// TestType identifies which catalog a record's test belongs to.
type TestType string

const (
	TestTypeCDD        TestType = "CDD_TEST"
	TestTypeAssessment TestType = "ASSESSMENT_TEST"
)

func (t TestType) Valid() bool {
	return t == TestTypeCDD || t == TestTypeAssessment
}

// RecordStatus is set by callers; scoring never transitions it.
type RecordStatus string

const (
	RecordStatusInProgress RecordStatus = "IN_PROGRESS"
	RecordStatusCompleted  RecordStatus = "COMPLETED"
	RecordStatusAbandoned  RecordStatus = "ABANDONED"
	RecordStatusInvalid    RecordStatus = "INVALID"
	RecordStatusReviewed   RecordStatus = "REVIEWED"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case RecordStatusInProgress, RecordStatusCompleted, RecordStatusAbandoned, RecordStatusInvalid, RecordStatusReviewed:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type ChildStatus string

const (
	ChildStatusActive    ChildStatus = "ACTIVE"
	ChildStatusInactive  ChildStatus = "INACTIVE"
	ChildStatusSuspended ChildStatus = "SUSPENDED"
)

type DisorderDiagnosis string

const (
	DiagnosisYes                DisorderDiagnosis = "YES"
	DiagnosisNo                 DisorderDiagnosis = "NO"
	DiagnosisNotEvaluated       DisorderDiagnosis = "NOT_EVALUATED"
	DiagnosisUnderInvestigation DisorderDiagnosis = "UNDER_INVESTIGATION"
)

type CDDTestStatus string

const (
	CDDTestStatusDraft    CDDTestStatus = "DRAFT"
	CDDTestStatusActive   CDDTestStatus = "ACTIVE"
	CDDTestStatusInactive CDDTestStatus = "INACTIVE"
	CDDTestStatusArchived CDDTestStatus = "ARCHIVED"
)

type AdministrationType string

const (
	AdministrationParentReport            AdministrationType = "PARENT_REPORT"
	AdministrationProfessionalObservation AdministrationType = "PROFESSIONAL_OBSERVATION"
	AdministrationDirectAssessment        AdministrationType = "DIRECT_ASSESSMENT"
	AdministrationSelfReport              AdministrationType = "SELF_REPORT"
)
