package repository

import (
	"github.com/lshigami/meowcdd/internal/model"
	"gorm.io/gorm"
)

// CDDTestFilter narrows the catalog. AgeMonths matches tests whose age window
// contains it; a missing bound is treated as open.
type CDDTestFilter struct {
	Status    model.CDDTestStatus
	Category  string
	AgeMonths *int
}

type CDDTestRepository interface {
	Create(test *model.CDDTest) error
	FindByID(id uint) (*model.CDDTest, error)
	FindByAssessmentCode(code string) (*model.CDDTest, error)
	FindPage(filter CDDTestFilter, page PageRequest) ([]model.CDDTest, int64, error)
	Count(filter CDDTestFilter) (int64, error)
	Update(test *model.CDDTest) error
	Delete(id uint) error
	ExistsByAssessmentCode(code string) (bool, error)
}

var cddTestSortColumns = map[string]string{
	"id":             "id",
	"assessmentCode": "assessment_code",
	"category":       "category",
	"minAgeMonths":   "min_age_months",
	"createdAt":      "created_at",
}

type cddTestRepository struct {
	db *gorm.DB
}

func NewCDDTestRepository(db *gorm.DB) CDDTestRepository {
	return &cddTestRepository{db: db}
}

func (r *cddTestRepository) Create(test *model.CDDTest) error {
	return translateError(r.db.Create(test).Error)
}

func (r *cddTestRepository) FindByID(id uint) (*model.CDDTest, error) {
	var test model.CDDTest
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &test, nil
}

func (r *cddTestRepository) FindByAssessmentCode(code string) (*model.CDDTest, error) {
	var test model.CDDTest
	if err := r.db.Where("assessment_code = ?", code).First(&test).Error; err != nil {
		return nil, translateError(err)
	}
	return &test, nil
}

func (r *cddTestRepository) applyFilter(query *gorm.DB, f CDDTestFilter) *gorm.DB {
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.AgeMonths != nil {
		query = query.
			Where("(min_age_months IS NULL OR min_age_months <= ?)", *f.AgeMonths).
			Where("(max_age_months IS NULL OR max_age_months >= ?)", *f.AgeMonths)
	}
	return query
}

func (r *cddTestRepository) FindPage(filter CDDTestFilter, page PageRequest) ([]model.CDDTest, int64, error) {
	total, err := r.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	var tests []model.CDDTest
	query := r.applyFilter(r.db.Model(&model.CDDTest{}), filter)
	if err := paginate(query, page, cddTestSortColumns, "created_at").Find(&tests).Error; err != nil {
		return nil, 0, err
	}
	return tests, total, nil
}

func (r *cddTestRepository) Count(filter CDDTestFilter) (int64, error) {
	var total int64
	err := r.applyFilter(r.db.Model(&model.CDDTest{}), filter).Count(&total).Error
	return total, err
}

func (r *cddTestRepository) Update(test *model.CDDTest) error {
	return translateError(r.db.Save(test).Error)
}

func (r *cddTestRepository) Delete(id uint) error {
	result := r.db.Delete(&model.CDDTest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cddTestRepository) ExistsByAssessmentCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.CDDTest{}).Where("assessment_code = ?", code).Count(&count).Error
	return count > 0, err
}
