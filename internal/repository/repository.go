package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// PageRequest is a zero-based page with a sort key already mapped to a column.
type PageRequest struct {
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
}

// translateError maps gorm errors onto the package sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

// paginate applies ordering, offset and limit. sortColumns whitelists the
// accepted sort keys; unknown keys fall back to fallback.
func paginate(db *gorm.DB, page PageRequest, sortColumns map[string]string, fallback string) *gorm.DB {
	column, ok := sortColumns[page.SortBy]
	if !ok {
		column = fallback
	}
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: page.SortDesc})
	if column != "id" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: page.SortDesc})
	}
	if page.Size > 0 {
		db = db.Offset(page.Page * page.Size).Limit(page.Size)
	}
	return db
}
