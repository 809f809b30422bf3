package repository

import (
	"github.com/lshigami/meowcdd/internal/model"
	"gorm.io/gorm"
)

type ChildFilter struct {
	ParentID     string
	Name         string
	Gender       model.Gender
	Status       model.ChildStatus
	MinAgeMonths *int
	MaxAgeMonths *int
}

type ChildRepository interface {
	Create(child *model.Child) error
	FindByID(id uint) (*model.Child, error)
	FindPage(filter ChildFilter, page PageRequest) ([]model.Child, int64, error)
	Update(child *model.Child) error
	Delete(id uint) error
}

var childSortColumns = map[string]string{
	"id":               "id",
	"fullName":         "full_name",
	"dateOfBirth":      "date_of_birth",
	"currentAgeMonths": "current_age_months",
	"registrationDate": "registration_date",
	"createdAt":        "created_at",
}

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Create(child *model.Child) error {
	return translateError(r.db.Create(child).Error)
}

func (r *childRepository) FindByID(id uint) (*model.Child, error) {
	var child model.Child
	if err := r.db.First(&child, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &child, nil
}

func (r *childRepository) applyFilter(query *gorm.DB, f ChildFilter) *gorm.DB {
	if f.ParentID != "" {
		query = query.Where("parent_id = ?", f.ParentID)
	}
	if f.Name != "" {
		query = query.Where("full_name ILIKE ?", "%"+f.Name+"%")
	}
	if f.Gender != "" {
		query = query.Where("gender = ?", f.Gender)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.MinAgeMonths != nil {
		query = query.Where("current_age_months >= ?", *f.MinAgeMonths)
	}
	if f.MaxAgeMonths != nil {
		query = query.Where("current_age_months <= ?", *f.MaxAgeMonths)
	}
	return query
}

func (r *childRepository) FindPage(filter ChildFilter, page PageRequest) ([]model.Child, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.Child{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var children []model.Child
	query := r.applyFilter(r.db.Model(&model.Child{}), filter)
	if err := paginate(query, page, childSortColumns, "created_at").Find(&children).Error; err != nil {
		return nil, 0, err
	}
	return children, total, nil
}

func (r *childRepository) Update(child *model.Child) error {
	return translateError(r.db.Save(child).Error)
}

func (r *childRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Child{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
