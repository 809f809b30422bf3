package repository

import (
	"time"

	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/scoring"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordFilter narrows a record listing. Nil or empty fields are ignored.
type RecordFilter struct {
	ChildID       *uint
	TestID        *uint
	TestType      model.TestType
	Status        model.RecordStatus
	ResultLevel   scoring.ResultLevel
	Assessor      string
	Environment   string
	ParentPresent *bool
	From          *time.Time
	To            *time.Time
	MinScore      *float64
	MaxScore      *float64
}

// RecordSummary aggregates a child's COMPLETED records.
type RecordSummary struct {
	CompletedCount int64
	AverageScore   *float64
	LastTestDate   *time.Time
}

type ChildTestRecordRepository interface {
	Create(record *model.ChildTestRecord) error
	FindByID(id uint) (*model.ChildTestRecord, error)
	FindByExternalID(externalID string) (*model.ChildTestRecord, error)
	FindPage(filter RecordFilter, page PageRequest) ([]model.ChildTestRecord, int64, error)
	// UpdateWithLock loads the row under a row lock, lets mutate change it and
	// saves it in the same transaction.
	UpdateWithLock(id uint, mutate func(record *model.ChildTestRecord) error) (*model.ChildTestRecord, error)
	Delete(id uint) error
	ExistsByExternalID(externalID string) (bool, error)
	ExistsByChildAndTest(childID, testID uint) (bool, error)
	SummaryByChild(childID uint) (*RecordSummary, error)
}

var recordSortColumns = map[string]string{
	"id":              "id",
	"testDate":        "test_date",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
	"totalScore":      "total_score",
	"percentageScore": "percentage_score",
	"status":          "status",
	"childId":         "child_id",
}

type childTestRecordRepository struct {
	db *gorm.DB
}

func NewChildTestRecordRepository(db *gorm.DB) ChildTestRecordRepository {
	return &childTestRecordRepository{db: db}
}

func (r *childTestRecordRepository) Create(record *model.ChildTestRecord) error {
	return translateError(r.db.Create(record).Error)
}

func (r *childTestRecordRepository) FindByID(id uint) (*model.ChildTestRecord, error) {
	var record model.ChildTestRecord
	if err := r.db.First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *childTestRecordRepository) FindByExternalID(externalID string) (*model.ChildTestRecord, error) {
	var record model.ChildTestRecord
	if err := r.db.Where("external_id = ?", externalID).First(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *childTestRecordRepository) applyFilter(query *gorm.DB, f RecordFilter) *gorm.DB {
	if f.ChildID != nil {
		query = query.Where("child_id = ?", *f.ChildID)
	}
	if f.TestID != nil {
		query = query.Where("test_id = ?", *f.TestID)
	}
	if f.TestType != "" {
		query = query.Where("test_type = ?", f.TestType)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.ResultLevel != "" {
		query = query.Where("result_level = ?", f.ResultLevel)
	}
	if f.Assessor != "" {
		query = query.Where("assessor = ?", f.Assessor)
	}
	if f.Environment != "" {
		query = query.Where("environment = ?", f.Environment)
	}
	if f.ParentPresent != nil {
		query = query.Where("parent_present = ?", *f.ParentPresent)
	}
	if f.From != nil {
		query = query.Where("test_date >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("test_date <= ?", *f.To)
	}
	if f.MinScore != nil {
		query = query.Where("percentage_score >= ?", *f.MinScore)
	}
	if f.MaxScore != nil {
		query = query.Where("percentage_score <= ?", *f.MaxScore)
	}
	return query
}

func (r *childTestRecordRepository) FindPage(filter RecordFilter, page PageRequest) ([]model.ChildTestRecord, int64, error) {
	var total int64
	base := r.applyFilter(r.db.Model(&model.ChildTestRecord{}), filter)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.ChildTestRecord
	query := r.applyFilter(r.db.Model(&model.ChildTestRecord{}), filter)
	if err := paginate(query, page, recordSortColumns, "test_date").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *childTestRecordRepository) UpdateWithLock(id uint, mutate func(record *model.ChildTestRecord) error) (*model.ChildTestRecord, error) {
	var record model.ChildTestRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&record, id).Error; err != nil {
			return translateError(err)
		}
		if err := mutate(&record); err != nil {
			return err
		}
		return translateError(tx.Save(&record).Error)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *childTestRecordRepository) Delete(id uint) error {
	result := r.db.Delete(&model.ChildTestRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *childTestRecordRepository) ExistsByExternalID(externalID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ChildTestRecord{}).Where("external_id = ?", externalID).Count(&count).Error
	return count > 0, err
}

func (r *childTestRecordRepository) ExistsByChildAndTest(childID, testID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ChildTestRecord{}).
		Where("child_id = ? AND test_id = ?", childID, testID).
		Count(&count).Error
	return count > 0, err
}

func (r *childTestRecordRepository) SummaryByChild(childID uint) (*RecordSummary, error) {
	var summary RecordSummary
	completed := r.db.Model(&model.ChildTestRecord{}).
		Where("child_id = ? AND status = ?", childID, model.RecordStatusCompleted)

	err := completed.
		Select("COUNT(*), AVG(percentage_score)").
		Row().
		Scan(&summary.CompletedCount, &summary.AverageScore)
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.ChildTestRecord{}).
		Where("child_id = ?", childID).
		Select("MAX(test_date)").
		Row().
		Scan(&summary.LastTestDate)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// lockForUpdate makes the next read take a row lock for the rest of the transaction.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}
