package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/repository"
	"github.com/lshigami/meowcdd/internal/scoring"
	"github.com/rs/zerolog/log"
)

// ChildTestRecordService manages child test records. Every write recomputes
// the derived scoring fields before the record is persisted.
type ChildTestRecordService interface {
	CreateRecord(req dto.ChildTestRecordRequestDTO) (*dto.ChildTestRecordResponseDTO, error)
	GetRecord(id uint) (*dto.ChildTestRecordResponseDTO, error)
	GetRecordByExternalID(externalID string) (*dto.ChildTestRecordResponseDTO, error)
	ListRecords(query dto.ChildTestRecordQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.ChildTestRecordResponseDTO], error)
	ReplaceRecord(id uint, req dto.ChildTestRecordRequestDTO) (*dto.ChildTestRecordResponseDTO, error)
	PatchRecord(id uint, req dto.ChildTestRecordPatchDTO) (*dto.ChildTestRecordResponseDTO, error)
	DeleteRecord(id uint) error
	ExistsByExternalID(externalID string) (bool, error)
	ExistsByChildAndTest(childID, testID uint) (bool, error)
	GetChildSummary(childID uint) (*dto.ChildTestSummaryDTO, error)
	GenerateInterpretation(id uint) (*dto.ChildTestRecordResponseDTO, error)
}

type childTestRecordService struct {
	recordRepo  repository.ChildTestRecordRepository
	interpreter InterpretationService
	now         func() time.Time
}

func NewChildTestRecordService(recordRepo repository.ChildTestRecordRepository, interpreter InterpretationService) ChildTestRecordService {
	return &childTestRecordService{
		recordRepo:  recordRepo,
		interpreter: interpreter,
		now:         time.Now,
	}
}

func (s *childTestRecordService) CreateRecord(req dto.ChildTestRecordRequestDTO) (*dto.ChildTestRecordResponseDTO, error) {
	externalID := strings.TrimSpace(req.ExternalID)
	if externalID == "" {
		externalID = uuid.NewString()
	}
	log.Info().Str("externalID", externalID).Uint("childID", req.ChildID).Msg("Creating child test record")

	exists, err := s.recordRepo.ExistsByExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("error checking external ID %s: %w", externalID, err)
	}
	if exists {
		return nil, fmt.Errorf("child test record with external ID %s: %w", externalID, ErrDuplicate)
	}

	var record model.ChildTestRecord
	applyRecordRequest(&record, req)
	record.ExternalID = externalID
	record.ApplyCreateDefaults(s.now())
	record.ApplyScoring()

	if err := s.recordRepo.Create(&record); err != nil {
		log.Error().Err(err).Str("externalID", externalID).Msg("Failed to create child test record")
		return nil, fmt.Errorf("database error creating child test record: %w", err)
	}
	return toRecordResponse(&record)
}

func (s *childTestRecordService) GetRecord(id uint) (*dto.ChildTestRecordResponseDTO, error) {
	record, err := s.recordRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("child test record %d: %w", id, err)
	}
	return toRecordResponse(record)
}

func (s *childTestRecordService) GetRecordByExternalID(externalID string) (*dto.ChildTestRecordResponseDTO, error) {
	record, err := s.recordRepo.FindByExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("child test record with external ID %s: %w", externalID, err)
	}
	return toRecordResponse(record)
}

func (s *childTestRecordService) ListRecords(query dto.ChildTestRecordQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.ChildTestRecordResponseDTO], error) {
	if query.MinScore != nil && query.MaxScore != nil && *query.MinScore > *query.MaxScore {
		return nil, fmt.Errorf("minScore %.2f is greater than maxScore %.2f: %w", *query.MinScore, *query.MaxScore, ErrInvalidInput)
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, fmt.Errorf("from is after to: %w", ErrInvalidInput)
	}

	page = page.Normalize("testDate")
	filter := repository.RecordFilter{
		ChildID:       query.ChildID,
		TestID:        query.TestID,
		TestType:      model.TestType(query.TestType),
		Status:        model.RecordStatus(query.Status),
		ResultLevel:   scoring.ResultLevel(query.ResultLevel),
		Assessor:      query.Assessor,
		Environment:   query.Environment,
		ParentPresent: query.ParentPresent,
		From:          query.From,
		To:            query.To,
		MinScore:      query.MinScore,
		MaxScore:      query.MaxScore,
	}
	records, total, err := s.recordRepo.FindPage(filter, toPageRequest(page))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list child test records")
		return nil, fmt.Errorf("error fetching child test records: %w", err)
	}

	content := make([]dto.ChildTestRecordResponseDTO, 0, len(records))
	for i := range records {
		resp, err := toRecordResponse(&records[i])
		if err != nil {
			return nil, err
		}
		content = append(content, *resp)
	}
	return dto.NewPageResponse(content, page.Page, page.Size, total), nil
}

func (s *childTestRecordService) ReplaceRecord(id uint, req dto.ChildTestRecordRequestDTO) (*dto.ChildTestRecordResponseDTO, error) {
	log.Info().Uint("recordID", id).Msg("Replacing child test record")
	updated, err := s.recordRepo.UpdateWithLock(id, func(record *model.ChildTestRecord) error {
		if externalID := strings.TrimSpace(req.ExternalID); externalID != "" && externalID != record.ExternalID {
			if err := s.ensureExternalIDFree(externalID); err != nil {
				return err
			}
			record.ExternalID = externalID
		}
		status, testDate := record.Status, record.TestDate
		applyRecordRequest(record, req)
		// Omitted status or test date keep the stored value; both columns are NOT NULL.
		if req.Status == "" {
			record.Status = status
		}
		if req.TestDate == nil {
			record.TestDate = testDate
		}
		record.ApplyScoring()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error replacing child test record %d: %w", id, err)
	}
	return toRecordResponse(updated)
}

func (s *childTestRecordService) PatchRecord(id uint, req dto.ChildTestRecordPatchDTO) (*dto.ChildTestRecordResponseDTO, error) {
	log.Info().Uint("recordID", id).Msg("Patching child test record")
	updated, err := s.recordRepo.UpdateWithLock(id, func(record *model.ChildTestRecord) error {
		if req.ExternalID != nil {
			externalID := strings.TrimSpace(*req.ExternalID)
			if externalID != record.ExternalID {
				if err := s.ensureExternalIDFree(externalID); err != nil {
					return err
				}
				record.ExternalID = externalID
			}
		}
		applyRecordPatch(record, req)
		record.ApplyScoring()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error patching child test record %d: %w", id, err)
	}
	return toRecordResponse(updated)
}

func (s *childTestRecordService) ensureExternalIDFree(externalID string) error {
	if externalID == "" {
		return fmt.Errorf("externalId must not be blank: %w", ErrInvalidInput)
	}
	exists, err := s.recordRepo.ExistsByExternalID(externalID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("child test record with external ID %s: %w", externalID, ErrDuplicate)
	}
	return nil
}

func (s *childTestRecordService) DeleteRecord(id uint) error {
	log.Info().Uint("recordID", id).Msg("Deleting child test record")
	if err := s.recordRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting child test record %d: %w", id, err)
	}
	return nil
}

func (s *childTestRecordService) ExistsByExternalID(externalID string) (bool, error) {
	return s.recordRepo.ExistsByExternalID(externalID)
}

func (s *childTestRecordService) ExistsByChildAndTest(childID, testID uint) (bool, error) {
	return s.recordRepo.ExistsByChildAndTest(childID, testID)
}

func (s *childTestRecordService) GetChildSummary(childID uint) (*dto.ChildTestSummaryDTO, error) {
	summary, err := s.recordRepo.SummaryByChild(childID)
	if err != nil {
		log.Error().Err(err).Uint("childID", childID).Msg("Failed to summarise child test records")
		return nil, fmt.Errorf("error summarising records for child %d: %w", childID, err)
	}
	return &dto.ChildTestSummaryDTO{
		ChildID:        childID,
		CompletedCount: summary.CompletedCount,
		AverageScore:   summary.AverageScore,
		LastTestDate:   summary.LastTestDate,
	}, nil
}

func (s *childTestRecordService) GenerateInterpretation(id uint) (*dto.ChildTestRecordResponseDTO, error) {
	current, err := s.recordRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("child test record %d: %w", id, err)
	}
	// The model call runs outside the row lock; only the text is written back.
	text := s.interpreter.Interpret(current)

	updated, err := s.recordRepo.UpdateWithLock(id, func(record *model.ChildTestRecord) error {
		record.ApplyScoring()
		if !sameScores(record, current) {
			log.Warn().Uint("recordID", id).Msg("Scores changed while generating interpretation, using template.")
			text = templateInterpretation(record)
		}
		record.Interpretation = text
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error saving interpretation for record %d: %w", id, err)
	}
	return toRecordResponse(updated)
}

func sameScores(a, b *model.ChildTestRecord) bool {
	return equalFloat(a.TotalScore, b.TotalScore) && equalFloat(a.MaxScore, b.MaxScore)
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// applyRecordRequest copies every caller-owned field. Derived fields in the
// request are ignored.
func applyRecordRequest(record *model.ChildTestRecord, req dto.ChildTestRecordRequestDTO) {
	record.ChildID = req.ChildID
	record.TestID = req.TestID
	record.TestType = model.TestType(req.TestType)
	record.TestDate = time.Time{}
	if req.TestDate != nil {
		record.TestDate = *req.TestDate
	}
	record.StartTime = req.StartTime
	record.EndTime = req.EndTime
	record.Status = model.RecordStatus(req.Status)
	record.TotalScore = req.TotalScore
	record.MaxScore = req.MaxScore
	record.Interpretation = req.Interpretation
	record.QuestionAnswers = req.QuestionAnswers
	record.CorrectAnswers = req.CorrectAnswers
	record.TotalQuestions = req.TotalQuestions
	record.SkippedQuestions = req.SkippedQuestions
	record.Notes = req.Notes
	record.Environment = req.Environment
	record.Assessor = req.Assessor
	record.ParentPresent = req.ParentPresent
}

func applyRecordPatch(record *model.ChildTestRecord, req dto.ChildTestRecordPatchDTO) {
	if req.ChildID != nil {
		record.ChildID = *req.ChildID
	}
	if req.TestID != nil {
		record.TestID = *req.TestID
	}
	if req.TestType != nil {
		record.TestType = model.TestType(*req.TestType)
	}
	if req.TestDate != nil {
		record.TestDate = *req.TestDate
	}
	if req.StartTime != nil {
		record.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		record.EndTime = req.EndTime
	}
	if req.Status != nil {
		record.Status = model.RecordStatus(*req.Status)
	}
	if req.TotalScore != nil {
		record.TotalScore = req.TotalScore
	}
	if req.MaxScore != nil {
		record.MaxScore = req.MaxScore
	}
	if req.Interpretation != nil {
		record.Interpretation = *req.Interpretation
	}
	if req.QuestionAnswers != nil {
		record.QuestionAnswers = req.QuestionAnswers
	}
	if req.CorrectAnswers != nil {
		record.CorrectAnswers = req.CorrectAnswers
	}
	if req.TotalQuestions != nil {
		record.TotalQuestions = req.TotalQuestions
	}
	if req.SkippedQuestions != nil {
		record.SkippedQuestions = req.SkippedQuestions
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.Environment != nil {
		record.Environment = *req.Environment
	}
	if req.Assessor != nil {
		record.Assessor = *req.Assessor
	}
	if req.ParentPresent != nil {
		record.ParentPresent = req.ParentPresent
	}
}

func toRecordResponse(record *model.ChildTestRecord) (*dto.ChildTestRecordResponseDTO, error) {
	var resp dto.ChildTestRecordResponseDTO
	if err := copier.Copy(&resp, record); err != nil {
		log.Error().Err(err).Uint("recordID", record.ID).Msg("Failed to copy ChildTestRecord model to DTO")
		return nil, fmt.Errorf("error preparing child test record response: %w", err)
	}
	resp.DurationMinutes = record.DurationMinutes()
	return &resp, nil
}

func toPageRequest(page dto.PageQuery) repository.PageRequest {
	return repository.PageRequest{
		Page:     page.Page,
		Size:     page.Size,
		SortBy:   page.SortBy,
		SortDesc: strings.EqualFold(page.SortDir, "desc"),
	}
}
