package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/meowcdd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds SQL without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}

func TestRecordFilterSQL(t *testing.T) {
	db := dryRunDB(t)
	repo := &childTestRecordRepository{db: db}

	childID := uint(7)
	minScore := 60.0
	present := true
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := RecordFilter{
		ChildID:       &childID,
		Status:        model.RecordStatusCompleted,
		ParentPresent: &present,
		From:          &from,
		MinScore:      &minScore,
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		query := repo.applyFilter(tx.Model(&model.ChildTestRecord{}), filter)
		return paginate(query, PageRequest{Page: 2, Size: 10, SortBy: "percentageScore", SortDesc: true}, recordSortColumns, "test_date").
			Find(&[]model.ChildTestRecord{})
	})

	assert.Contains(t, sql, `"child_test_records"`)
	assert.Contains(t, sql, "child_id = 7")
	assert.Contains(t, sql, "status = 'COMPLETED'")
	assert.Contains(t, sql, "parent_present = true")
	assert.Contains(t, sql, "percentage_score >= 60")
	assert.Contains(t, sql, "test_date >= ")
	assert.Contains(t, sql, `"deleted_at" IS NULL`)
	assert.Contains(t, sql, `ORDER BY "percentage_score" DESC,"id" DESC`)
	assert.Contains(t, sql, "LIMIT 10 OFFSET 20")
	assert.NotContains(t, sql, "test_type")
}

func TestPaginate_UnknownSortFallsBack(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return paginate(tx.Model(&model.ChildTestRecord{}), PageRequest{Size: 5, SortBy: "notes; DROP TABLE"}, recordSortColumns, "test_date").
			Find(&[]model.ChildTestRecord{})
	})

	assert.Contains(t, sql, `ORDER BY "test_date","id"`)
	assert.NotContains(t, sql, "DROP")
	assert.Contains(t, sql, "LIMIT 5")
}

func TestCDDTestFilterSQL_AgeWindowIsOpenEnded(t *testing.T) {
	db := dryRunDB(t)
	repo := &cddTestRepository{db: db}

	age := 24
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repo.applyFilter(tx.Model(&model.CDDTest{}), CDDTestFilter{Status: model.CDDTestStatusActive, AgeMonths: &age}).
			Find(&[]model.CDDTest{})
	})

	assert.Contains(t, sql, "status = 'ACTIVE'")
	assert.Contains(t, sql, "(min_age_months IS NULL OR min_age_months <= 24)")
	assert.Contains(t, sql, "(max_age_months IS NULL OR max_age_months >= 24)")
}

func TestChildFilterSQL_NameIsCaseInsensitive(t *testing.T) {
	db := dryRunDB(t)
	repo := &childRepository{db: db}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repo.applyFilter(tx.Model(&model.Child{}), ChildFilter{Name: "an", Gender: model.GenderFemale}).
			Find(&[]model.Child{})
	})

	assert.Contains(t, sql, "full_name ILIKE '%an%'")
	assert.Contains(t, sql, "gender = 'FEMALE'")
}

func TestLockForUpdateSQL(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var record model.ChildTestRecord
		return lockForUpdate(tx).First(&record, 5)
	})

	assert.Contains(t, sql, `FROM "child_test_records"`)
	assert.Contains(t, sql, `"child_test_records"."id" = 5`)
	assert.Contains(t, sql, "FOR UPDATE")
}
