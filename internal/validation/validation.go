package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/scoring"
)

func enumOf[T ~string](values ...T) validator.Func {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[string(v)] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

var rules = map[string]validator.Func{
	"test_type":     enumOf(model.TestTypeCDD, model.TestTypeAssessment),
	"record_status": enumOf(model.RecordStatusInProgress, model.RecordStatusCompleted, model.RecordStatusAbandoned, model.RecordStatusInvalid, model.RecordStatusReviewed),
	"result_level":  enumOf(scoring.ResultLevels()...),
	"gender":        enumOf(model.GenderMale, model.GenderFemale, model.GenderOther),
	"child_status":  enumOf(model.ChildStatusActive, model.ChildStatusInactive, model.ChildStatusSuspended),
	"disorder_diagnosis": enumOf(model.DiagnosisYes, model.DiagnosisNo, model.DiagnosisNotEvaluated,
		model.DiagnosisUnderInvestigation),
	"cdd_test_status": enumOf(model.CDDTestStatusDraft, model.CDDTestStatusActive, model.CDDTestStatusInactive,
		model.CDDTestStatusArchived),
	"administration_type": enumOf(model.AdministrationParentReport, model.AdministrationProfessionalObservation,
		model.AdministrationDirectAssessment, model.AdministrationSelfReport),
}

// Register adds the domain enum rules to v.
func Register(v *validator.Validate) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

// RegisterGinValidators installs the rules into gin's binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}
