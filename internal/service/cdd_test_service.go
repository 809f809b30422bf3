package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// CDDTestService manages the developmental screening test catalog.
type CDDTestService interface {
	CreateTest(req dto.CDDTestRequestDTO) (*dto.CDDTestResponseDTO, error)
	GetTest(id uint) (*dto.CDDTestResponseDTO, error)
	GetTestByCode(code string) (*dto.CDDTestResponseDTO, error)
	ListTests(query dto.CDDTestQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.CDDTestResponseDTO], error)
	ListTestsForChild(childID uint, page dto.PageQuery) (*dto.PageResponseDTO[dto.CDDTestResponseDTO], error)
	UpdateTest(id uint, req dto.CDDTestRequestDTO) (*dto.CDDTestResponseDTO, error)
	DeleteTest(id uint) error
	ExistsByCode(code string) (bool, error)
	CountTests(query dto.CDDTestQuery) (int64, error)
}

type cddTestService struct {
	testRepo  repository.CDDTestRepository
	childRepo repository.ChildRepository
	now       func() time.Time
}

func NewCDDTestService(testRepo repository.CDDTestRepository, childRepo repository.ChildRepository) CDDTestService {
	return &cddTestService{testRepo: testRepo, childRepo: childRepo, now: time.Now}
}

func (s *cddTestService) CreateTest(req dto.CDDTestRequestDTO) (*dto.CDDTestResponseDTO, error) {
	if err := validateAgeWindow(req); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.AssessmentCode)
	exists, err := s.testRepo.ExistsByAssessmentCode(code)
	if err != nil {
		return nil, fmt.Errorf("error checking assessment code %s: %w", code, err)
	}
	if exists {
		return nil, fmt.Errorf("CDD test with assessment code %s: %w", code, ErrDuplicate)
	}

	var test model.CDDTest
	applyCDDTestRequest(&test, req)
	test.AssessmentCode = code
	if test.Status == "" {
		test.Status = model.CDDTestStatusDraft
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("assessmentCode", code).Msg("Failed to create CDD test")
		return nil, fmt.Errorf("database error creating CDD test: %w", err)
	}
	return toCDDTestResponse(&test)
}

func (s *cddTestService) GetTest(id uint) (*dto.CDDTestResponseDTO, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("CDD test %d: %w", id, err)
	}
	return toCDDTestResponse(test)
}

func (s *cddTestService) GetTestByCode(code string) (*dto.CDDTestResponseDTO, error) {
	test, err := s.testRepo.FindByAssessmentCode(code)
	if err != nil {
		return nil, fmt.Errorf("CDD test with code %s: %w", code, err)
	}
	return toCDDTestResponse(test)
}

func (s *cddTestService) ListTests(query dto.CDDTestQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.CDDTestResponseDTO], error) {
	return s.listTests(toCDDTestFilter(query), page)
}

// ListTestsForChild lists the ACTIVE tests whose age window covers the child's current age.
func (s *cddTestService) ListTestsForChild(childID uint, page dto.PageQuery) (*dto.PageResponseDTO[dto.CDDTestResponseDTO], error) {
	child, err := s.childRepo.FindByID(childID)
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", childID, err)
	}
	if child.DateOfBirth.IsZero() {
		return nil, fmt.Errorf("child %d has no date of birth: %w", childID, ErrInvalidInput)
	}
	age := model.AgeInMonths(child.DateOfBirth, s.now())
	return s.listTests(repository.CDDTestFilter{Status: model.CDDTestStatusActive, AgeMonths: &age}, page)
}

func (s *cddTestService) listTests(filter repository.CDDTestFilter, page dto.PageQuery) (*dto.PageResponseDTO[dto.CDDTestResponseDTO], error) {
	page = page.Normalize("createdAt")
	tests, total, err := s.testRepo.FindPage(filter, toPageRequest(page))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list CDD tests")
		return nil, fmt.Errorf("error fetching CDD tests: %w", err)
	}
	content := make([]dto.CDDTestResponseDTO, 0, len(tests))
	for i := range tests {
		resp, err := toCDDTestResponse(&tests[i])
		if err != nil {
			return nil, err
		}
		content = append(content, *resp)
	}
	return dto.NewPageResponse(content, page.Page, page.Size, total), nil
}

func (s *cddTestService) UpdateTest(id uint, req dto.CDDTestRequestDTO) (*dto.CDDTestResponseDTO, error) {
	if err := validateAgeWindow(req); err != nil {
		return nil, err
	}
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("CDD test %d: %w", id, err)
	}

	code := strings.TrimSpace(req.AssessmentCode)
	if code != test.AssessmentCode {
		other, err := s.testRepo.FindByAssessmentCode(code)
		switch {
		case err == nil && other.ID != id:
			return nil, fmt.Errorf("CDD test with assessment code %s: %w", code, ErrDuplicate)
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("error checking assessment code %s: %w", code, err)
		}
	}

	status := test.Status
	applyCDDTestRequest(test, req)
	test.AssessmentCode = code
	if test.Status == "" {
		test.Status = status
	}
	if err := s.testRepo.Update(test); err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("Failed to update CDD test")
		return nil, fmt.Errorf("database error updating CDD test %d: %w", id, err)
	}
	return toCDDTestResponse(test)
}

func (s *cddTestService) DeleteTest(id uint) error {
	if err := s.testRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting CDD test %d: %w", id, err)
	}
	return nil
}

func (s *cddTestService) ExistsByCode(code string) (bool, error) {
	return s.testRepo.ExistsByAssessmentCode(code)
}

func (s *cddTestService) CountTests(query dto.CDDTestQuery) (int64, error) {
	return s.testRepo.Count(toCDDTestFilter(query))
}

func validateAgeWindow(req dto.CDDTestRequestDTO) error {
	if req.MinAgeMonths != nil && req.MaxAgeMonths != nil && *req.MinAgeMonths > *req.MaxAgeMonths {
		return fmt.Errorf("minAgeMonths %d is greater than maxAgeMonths %d: %w", *req.MinAgeMonths, *req.MaxAgeMonths, ErrInvalidInput)
	}
	return nil
}

func toCDDTestFilter(query dto.CDDTestQuery) repository.CDDTestFilter {
	return repository.CDDTestFilter{
		Status:    model.CDDTestStatus(query.Status),
		Category:  query.Category,
		AgeMonths: query.AgeMonths,
	}
}

func applyCDDTestRequest(test *model.CDDTest, req dto.CDDTestRequestDTO) {
	test.Names = datatypes.NewJSONType(req.Names)
	test.Descriptions = datatypes.NewJSONType(req.Descriptions)
	test.Instructions = datatypes.NewJSONType(req.Instructions)
	test.Category = req.Category
	test.MinAgeMonths = req.MinAgeMonths
	test.MaxAgeMonths = req.MaxAgeMonths
	test.Status = model.CDDTestStatus(req.Status)
	test.Version = req.Version
	test.EstimatedDuration = req.EstimatedDuration
	test.AdministrationType = model.AdministrationType(req.AdministrationType)
	test.RequiredQualifications = req.RequiredQualifications
	test.RequiredMaterials = req.RequiredMaterials
	test.Notes = req.Notes
	test.Questions = req.Questions
	test.ScoringCriteria = req.ScoringCriteria
}

func toCDDTestResponse(test *model.CDDTest) (*dto.CDDTestResponseDTO, error) {
	var resp dto.CDDTestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Msg("Failed to copy CDDTest model to DTO")
		return nil, fmt.Errorf("error preparing CDD test response: %w", err)
	}
	resp.Names = test.Names.Data()
	resp.Descriptions = test.Descriptions.Data()
	resp.Instructions = test.Instructions.Data()
	return &resp, nil
}
