package service

import (
	"sort"
	"sync"

	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/repository"
)

type fakeRecordRepo struct {
	mu      sync.Mutex
	rowLock sync.Mutex
	nextID  uint
	records map[uint]model.ChildTestRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[uint]model.ChildTestRecord{}}
}

func (r *fakeRecordRepo) Create(record *model.ChildTestRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ExternalID == record.ExternalID {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	record.ID = r.nextID
	r.records[record.ID] = *record
	return nil
}

func (r *fakeRecordRepo) FindByID(id uint) (*model.ChildTestRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (r *fakeRecordRepo) FindByExternalID(externalID string) (*model.ChildTestRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ExternalID == externalID {
			return &record, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRecordRepo) FindPage(filter repository.RecordFilter, page repository.PageRequest) ([]model.ChildTestRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []model.ChildTestRecord
	for _, record := range r.records {
		if filter.ChildID != nil && record.ChildID != *filter.ChildID {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		matched = append(matched, record)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	start := page.Page * page.Size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeRecordRepo) UpdateWithLock(id uint, mutate func(record *model.ChildTestRecord) error) (*model.ChildTestRecord, error) {
	r.rowLock.Lock()
	defer r.rowLock.Unlock()

	record, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := mutate(record); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.records[id] = *record
	r.mu.Unlock()
	return record, nil
}

func (r *fakeRecordRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) ExistsByExternalID(externalID string) (bool, error) {
	_, err := r.FindByExternalID(externalID)
	return err == nil, nil
}

func (r *fakeRecordRepo) ExistsByChildAndTest(childID, testID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ChildID == childID && record.TestID == testID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRecordRepo) SummaryByChild(childID uint) (*repository.RecordSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var summary repository.RecordSummary
	var sum float64
	var scored int
	for _, record := range r.records {
		if record.ChildID != childID {
			continue
		}
		if summary.LastTestDate == nil || record.TestDate.After(*summary.LastTestDate) {
			d := record.TestDate
			summary.LastTestDate = &d
		}
		if !record.IsCompleted() {
			continue
		}
		summary.CompletedCount++
		if record.PercentageScore != nil {
			sum += *record.PercentageScore
			scored++
		}
	}
	if scored > 0 {
		avg := sum / float64(scored)
		summary.AverageScore = &avg
	}
	return &summary, nil
}

type fakeChildRepo struct {
	mu       sync.Mutex
	nextID   uint
	children map[uint]model.Child
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{children: map[uint]model.Child{}}
}

func (r *fakeChildRepo) Create(child *model.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	child.ID = r.nextID
	r.children[child.ID] = *child
	return nil
}

func (r *fakeChildRepo) FindByID(id uint) (*model.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	child, ok := r.children[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &child, nil
}

func (r *fakeChildRepo) FindPage(filter repository.ChildFilter, page repository.PageRequest) ([]model.Child, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []model.Child
	for _, child := range r.children {
		if filter.ParentID != "" && child.ParentID != filter.ParentID {
			continue
		}
		matched = append(matched, child)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, int64(len(matched)), nil
}

func (r *fakeChildRepo) Update(child *model.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.children[child.ID]; !ok {
		return repository.ErrNotFound
	}
	r.children[child.ID] = *child
	return nil
}

func (r *fakeChildRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.children[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.children, id)
	return nil
}

type fakeCDDTestRepo struct {
	mu     sync.Mutex
	nextID uint
	tests  map[uint]model.CDDTest
	// lastFilter records the filter passed to FindPage.
	lastFilter repository.CDDTestFilter
}

func newFakeCDDTestRepo() *fakeCDDTestRepo {
	return &fakeCDDTestRepo{tests: map[uint]model.CDDTest{}}
}

func (r *fakeCDDTestRepo) Create(test *model.CDDTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	test.ID = r.nextID
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeCDDTestRepo) FindByID(id uint) (*model.CDDTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	test, ok := r.tests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &test, nil
}

func (r *fakeCDDTestRepo) FindByAssessmentCode(code string) (*model.CDDTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, test := range r.tests {
		if test.AssessmentCode == code {
			return &test, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCDDTestRepo) matches(test model.CDDTest, f repository.CDDTestFilter) bool {
	if f.Status != "" && test.Status != f.Status {
		return false
	}
	if f.Category != "" && test.Category != f.Category {
		return false
	}
	if f.AgeMonths != nil {
		if test.MinAgeMonths != nil && *test.MinAgeMonths > *f.AgeMonths {
			return false
		}
		if test.MaxAgeMonths != nil && *test.MaxAgeMonths < *f.AgeMonths {
			return false
		}
	}
	return true
}

func (r *fakeCDDTestRepo) FindPage(filter repository.CDDTestFilter, page repository.PageRequest) ([]model.CDDTest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	var matched []model.CDDTest
	for _, test := range r.tests {
		if r.matches(test, filter) {
			matched = append(matched, test)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, int64(len(matched)), nil
}

func (r *fakeCDDTestRepo) Count(filter repository.CDDTestFilter) (int64, error) {
	_, total, err := r.FindPage(filter, repository.PageRequest{})
	return total, err
}

func (r *fakeCDDTestRepo) Update(test *model.CDDTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tests[test.ID]; !ok {
		return repository.ErrNotFound
	}
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeCDDTestRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tests[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tests, id)
	return nil
}

func (r *fakeCDDTestRepo) ExistsByAssessmentCode(code string) (bool, error) {
	_, err := r.FindByAssessmentCode(code)
	return err == nil, nil
}
