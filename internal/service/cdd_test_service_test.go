package service

import (
	"testing"
	"time"

	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cddRequest(code string, minAge, maxAge *int) dto.CDDTestRequestDTO {
	return dto.CDDTestRequestDTO{
		AssessmentCode: code,
		Names:          model.LocalizedText{"vi": "Sàng lọc", "en": "Screening"},
		Category:       "MOTOR",
		MinAgeMonths:   minAge,
		MaxAgeMonths:   maxAge,
	}
}

func TestCDDTestLifecycle(t *testing.T) {
	svc := NewCDDTestService(newFakeCDDTestRepo(), newFakeChildRepo())

	created, err := svc.CreateTest(cddRequest(" M-CHAT ", ptr(16), ptr(30)))
	require.NoError(t, err)
	assert.Equal(t, "M-CHAT", created.AssessmentCode)
	assert.Equal(t, model.CDDTestStatusDraft, created.Status)
	assert.Equal(t, "Screening", created.Names["en"])

	_, err = svc.CreateTest(cddRequest("M-CHAT", nil, nil))
	assert.ErrorIs(t, err, ErrDuplicate)

	byCode, err := svc.GetTestByCode("M-CHAT")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	req := cddRequest("M-CHAT-R", ptr(16), ptr(30))
	req.Status = string(model.CDDTestStatusActive)
	updated, err := svc.UpdateTest(created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "M-CHAT-R", updated.AssessmentCode)
	assert.Equal(t, model.CDDTestStatusActive, updated.Status)

	exists, err := svc.ExistsByCode("M-CHAT")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, svc.DeleteTest(created.ID))
	_, err = svc.GetTest(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCDDTest_InvalidAgeWindow(t *testing.T) {
	svc := NewCDDTestService(newFakeCDDTestRepo(), newFakeChildRepo())

	_, err := svc.CreateTest(cddRequest("X", ptr(30), ptr(16)))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCDDTest_ListAndCount(t *testing.T) {
	svc := NewCDDTestService(newFakeCDDTestRepo(), newFakeChildRepo())
	for _, code := range []string{"A", "B", "C"} {
		req := cddRequest(code, ptr(12), ptr(24))
		req.Status = string(model.CDDTestStatusActive)
		_, err := svc.CreateTest(req)
		require.NoError(t, err)
	}
	_, err := svc.CreateTest(cddRequest("D", ptr(36), nil))
	require.NoError(t, err)

	count, err := svc.CountTests(dto.CDDTestQuery{Status: string(model.CDDTestStatusActive)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	page, err := svc.ListTests(dto.CDDTestQuery{AgeMonths: ptr(40)}, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "D", page.Content[0].AssessmentCode)
}

func TestCDDTest_ListForChild(t *testing.T) {
	tests := newFakeCDDTestRepo()
	children := newFakeChildRepo()
	svc := NewCDDTestService(tests, children).(*cddTestService)
	svc.now = func() time.Time { return fixedNow }

	child := &model.Child{FullName: "An", DateOfBirth: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, children.Create(child))

	_, err := svc.ListTestsForChild(child.ID, dto.PageQuery{})
	require.NoError(t, err)
	require.NotNil(t, tests.lastFilter.AgeMonths)
	assert.Equal(t, 12, *tests.lastFilter.AgeMonths)
	assert.Equal(t, model.CDDTestStatusActive, tests.lastFilter.Status)

	_, err = svc.ListTestsForChild(99, dto.PageQuery{})
	assert.ErrorIs(t, err, ErrNotFound)
}
