package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/repository"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

type ChildService interface {
	CreateChild(req dto.ChildRequestDTO) (*dto.ChildResponseDTO, error)
	GetChild(id uint) (*dto.ChildResponseDTO, error)
	ListChildren(query dto.ChildQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.ChildResponseDTO], error)
	UpdateChild(id uint, req dto.ChildRequestDTO) (*dto.ChildResponseDTO, error)
	DeleteChild(id uint) error
}

type childService struct {
	childRepo repository.ChildRepository
	now       func() time.Time
}

func NewChildService(childRepo repository.ChildRepository) ChildService {
	return &childService{childRepo: childRepo, now: time.Now}
}

func (s *childService) CreateChild(req dto.ChildRequestDTO) (*dto.ChildResponseDTO, error) {
	var child model.Child
	if err := applyChildRequest(&child, req); err != nil {
		return nil, err
	}
	now := s.now()
	child.ApplyCreateDefaults(now)
	child.RefreshAge(now)

	if err := s.childRepo.Create(&child); err != nil {
		log.Error().Err(err).Str("parentID", req.ParentID).Msg("Failed to create child")
		return nil, fmt.Errorf("database error creating child: %w", err)
	}
	return toChildResponse(&child)
}

func (s *childService) GetChild(id uint) (*dto.ChildResponseDTO, error) {
	child, err := s.childRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", id, err)
	}
	return toChildResponse(child)
}

func (s *childService) ListChildren(query dto.ChildQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.ChildResponseDTO], error) {
	if query.MinAge != nil && query.MaxAge != nil && *query.MinAge > *query.MaxAge {
		return nil, fmt.Errorf("minAgeMonths is greater than maxAgeMonths: %w", ErrInvalidInput)
	}
	page = page.Normalize("createdAt")
	filter := repository.ChildFilter{
		ParentID:     query.ParentID,
		Name:         query.Name,
		Gender:       model.Gender(query.Gender),
		Status:       model.ChildStatus(query.Status),
		MinAgeMonths: query.MinAge,
		MaxAgeMonths: query.MaxAge,
	}
	children, total, err := s.childRepo.FindPage(filter, toPageRequest(page))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list children")
		return nil, fmt.Errorf("error fetching children: %w", err)
	}
	content := make([]dto.ChildResponseDTO, 0, len(children))
	for i := range children {
		resp, err := toChildResponse(&children[i])
		if err != nil {
			return nil, err
		}
		content = append(content, *resp)
	}
	return dto.NewPageResponse(content, page.Page, page.Size, total), nil
}

func (s *childService) UpdateChild(id uint, req dto.ChildRequestDTO) (*dto.ChildResponseDTO, error) {
	child, err := s.childRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", id, err)
	}
	status := child.Status
	if err := applyChildRequest(child, req); err != nil {
		return nil, err
	}
	if child.Status == "" {
		child.Status = status
	}
	child.RefreshAge(s.now())

	if err := s.childRepo.Update(child); err != nil {
		log.Error().Err(err).Uint("childID", id).Msg("Failed to update child")
		return nil, fmt.Errorf("database error updating child %d: %w", id, err)
	}
	return toChildResponse(child)
}

func (s *childService) DeleteChild(id uint) error {
	if err := s.childRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting child %d: %w", id, err)
	}
	return nil
}

func applyChildRequest(child *model.Child, req dto.ChildRequestDTO) error {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return fmt.Errorf("dateOfBirth %q: %w", req.DateOfBirth, ErrInvalidInput)
	}
	child.ParentID = req.ParentID
	child.FullName = req.FullName
	child.Gender = model.Gender(req.Gender)
	child.DateOfBirth = dob
	child.IsPremature = req.IsPremature
	child.GestationalWeek = req.GestationalWeek
	child.BirthWeightGrams = req.BirthWeightGrams
	child.SpecialMedicalConditions = req.SpecialMedicalConditions
	child.DevelopmentalDisorderDiag = model.DisorderDiagnosis(req.DevelopmentalDisorderDiagnosis)
	child.HasEarlyIntervention = req.HasEarlyIntervention
	child.EarlyInterventionDetails = req.EarlyInterventionDetails
	child.PrimaryLanguage = req.PrimaryLanguage
	child.FamilyDevelopmentalIssues = req.FamilyDevelopmentalIssues
	child.Height = req.Height
	child.Weight = req.Weight
	child.BloodType = req.BloodType
	child.Allergies = req.Allergies
	child.MedicalHistory = req.MedicalHistory
	child.Status = model.ChildStatus(req.Status)
	return nil
}

func toChildResponse(child *model.Child) (*dto.ChildResponseDTO, error) {
	var resp dto.ChildResponseDTO
	if err := copier.Copy(&resp, child); err != nil {
		log.Error().Err(err).Uint("childID", child.ID).Msg("Failed to copy Child model to DTO")
		return nil, fmt.Errorf("error preparing child response: %w", err)
	}
	resp.Gender = string(child.Gender)
	resp.Status = string(child.Status)
	resp.DevelopmentalDisorderDiagnosis = string(child.DevelopmentalDisorderDiag)
	resp.DateOfBirth = child.DateOfBirth.Format(dateLayout)
	return &resp, nil
}
