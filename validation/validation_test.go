package validation

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	badFormat map[string]bool
	oversize  map[string]bool
}

func (f fakeChecker) IsImage(file *multipart.FileHeader) bool {
	return !f.badFormat[file.Filename]
}

func (f fakeChecker) CheckSize(file *multipart.FileHeader, _ int64) bool {
	return !f.oversize[file.Filename]
}

func headers(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(names))
	for i, name := range names {
		out[i] = &multipart.FileHeader{Filename: name}
	}
	return out
}

func TestPhotosReportsEveryFailingItem(t *testing.T) {
	checker := fakeChecker{
		badFormat: map[string]bool{"a.txt": true},
		oversize:  map[string]bool{"c.jpg": true},
	}
	got := Photos("photos", headers("a.txt", "b.jpg", "c.jpg"), checker, 400)

	require.Len(t, got, 2)
	assert.Contains(t, got[0].Message, "a.txt")
	assert.Contains(t, got[1].Message, "c.jpg")
	assert.Contains(t, got[1].Message, "400kb")
}

func TestPhotosAllValid(t *testing.T) {
	got := Photos("photos", headers("a.jpg", "b.jpg"), fakeChecker{}, 400)
	assert.Empty(t, got)
	assert.NoError(t, got.OrNil())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "red rose", NormalizeName("  Red Rose "))
}

func TestProductFieldsAccumulates(t *testing.T) {
	lookups := ProductLookups{
		NameTaken:      func(string, uint) (bool, error) { return true, nil },
		CategoryExists: func(uint) (bool, error) { return false, nil },
	}
	got, err := ProductFields("Rose", 7, 0, lookups)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "name", got[0].Field)
	assert.Equal(t, "category_id", got[1].Field)
	assert.Error(t, got.OrNil())
}

func TestViolationsError(t *testing.T) {
	var v Violations
	v.Add("name", "this name already exists")
	assert.Equal(t, "name: this name already exists", v.Error())
}
