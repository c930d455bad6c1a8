package photos

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorino-shop/florista-api/validation"
)

// --- Mock store ---

type mockStore struct {
	nextID      uint
	records     []Record
	insertCalls int
	failInsert  int // fail the nth Insert call, 0 = never
}

func (m *mockStore) Insert(rec *Record) error {
	m.insertCalls++
	if m.failInsert != 0 && m.insertCalls == m.failInsert {
		return errors.New("db down")
	}
	m.nextID++
	rec.ID = m.nextID
	m.records = append(m.records, *rec)
	return nil
}

func (m *mockStore) ListByParent(parentID uint) ([]Record, error) {
	var out []Record
	for _, rec := range m.records {
		if rec.ParentID == parentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockStore) Find(id uint) (*Record, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockStore) Delete(id uint) error {
	for i, rec := range m.records {
		if rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStore) UpdateOrder(id uint, order int) error {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Order = order
			return nil
		}
	}
	return ErrNotFound
}

// --- Mock file store ---

type mockFiles struct {
	uploads int
	stored  map[string]bool
	badSize map[string]bool // filenames failing CheckSize
}

func newMockFiles() *mockFiles {
	return &mockFiles{stored: map[string]bool{}, badSize: map[string]bool{}}
}

func (m *mockFiles) IsImage(file *multipart.FileHeader) bool {
	return file.Filename != "notes.txt"
}

func (m *mockFiles) CheckSize(file *multipart.FileHeader, _ int64) bool {
	return !m.badSize[file.Filename]
}

func (m *mockFiles) Upload(file *multipart.FileHeader) (string, error) {
	m.uploads++
	name := "stored_" + file.Filename
	m.stored[name] = true
	return name, nil
}

func (m *mockFiles) Delete(name string) error {
	delete(m.stored, name)
	return nil
}

func uploads(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(names))
	for i, name := range names {
		out[i] = &multipart.FileHeader{Filename: name}
	}
	return out
}

// --- Tests ---

func TestCreateBatchAssignsSequentialOrders(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	set := NewSet(store, files, 400)

	records, err := set.CreateBatch(7, uploads("a.jpg", "b.jpg", "c.jpg"))
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Order)
		assert.Equal(t, uint(7), rec.ParentID)
	}
	assert.Equal(t, "stored_a.jpg", records[0].Name)
}

func TestCreateBatchRejectsWholeBatchOnValidationFailure(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	files.badSize["b.jpg"] = true
	set := NewSet(store, files, 400)

	_, err := set.CreateBatch(7, uploads("a.jpg", "b.jpg", "c.jpg"))

	var v validation.Violations
	require.ErrorAs(t, err, &v)
	require.Len(t, v, 1)
	assert.Contains(t, v[0].Message, "b.jpg")
	// nothing persisted for items 1 or 3 either
	assert.Empty(t, store.records)
	assert.Zero(t, files.uploads)
}

func TestCreateBatchReportsEveryFailingItem(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	files.badSize["a.jpg"] = true
	set := NewSet(store, files, 400)

	_, err := set.CreateBatch(7, uploads("a.jpg", "notes.txt", "c.jpg"))

	var v validation.Violations
	require.ErrorAs(t, err, &v)
	assert.Len(t, v, 2)
}

func TestCreateBatchCleansUpStoredFilesOnInsertFailure(t *testing.T) {
	store := &mockStore{failInsert: 2}
	files := newMockFiles()
	set := NewSet(store, files, 400)

	_, err := set.CreateBatch(7, uploads("a.jpg", "b.jpg"))
	require.Error(t, err)
	assert.Empty(t, files.stored, "files stored before the failure should be deleted")
}

func TestDeleteOneLeavesSiblingOrdersUntouched(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	set := NewSet(store, files, 400)

	records, err := set.CreateBatch(7, uploads("a.jpg", "b.jpg", "c.jpg"))
	require.NoError(t, err)

	require.NoError(t, set.DeleteOne(records[1].ID)) // the order=2 photo

	remaining, err := store.ListByParent(7)
	require.NoError(t, err)
	orders := []int{}
	for _, rec := range remaining {
		orders = append(orders, rec.Order)
	}
	// gap stays, no renumbering; the file is gone too
	assert.Equal(t, []int{1, 3}, orders)
	assert.False(t, files.stored["stored_b.jpg"])
}

func TestDeleteOneMissing(t *testing.T) {
	set := NewSet(&mockStore{}, newMockFiles(), 400)
	assert.ErrorIs(t, set.DeleteOne(99), ErrNotFound)
}

func TestReorderOverwritesWithoutCollisionCheck(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	set := NewSet(store, files, 400)

	records, err := set.CreateBatch(7, uploads("a.jpg", "b.jpg"))
	require.NoError(t, err)

	// duplicate order is an accepted state
	require.NoError(t, set.Reorder(records[1].ID, 1))

	got, _ := store.Find(records[1].ID)
	assert.Equal(t, 1, got.Order)
	other, _ := store.Find(records[0].ID)
	assert.Equal(t, 1, other.Order)
}

func TestReorderRejectsNonPositiveOrder(t *testing.T) {
	set := NewSet(&mockStore{}, newMockFiles(), 400)
	var v validation.Violations
	assert.ErrorAs(t, set.Reorder(1, 0), &v)
}

func TestReplaceBatchSwapsSetWithFreshOrders(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	set := NewSet(store, files, 400)

	_, err := set.CreateBatch(7, uploads("old1.jpg", "old2.jpg", "old3.jpg"))
	require.NoError(t, err)

	records, err := set.ReplaceBatch(7, uploads("new1.jpg", "new2.jpg"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Order)
	assert.Equal(t, 2, records[1].Order)

	remaining, _ := store.ListByParent(7)
	assert.Len(t, remaining, 2)
	assert.False(t, files.stored["stored_old1.jpg"])
	assert.True(t, files.stored["stored_new1.jpg"])
}

func TestReplaceBatchKeepsExistingWhenNewBatchInvalid(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	set := NewSet(store, files, 400)

	_, err := set.CreateBatch(7, uploads("old1.jpg"))
	require.NoError(t, err)

	files.badSize["new2.jpg"] = true
	_, err = set.ReplaceBatch(7, uploads("new1.jpg", "new2.jpg"))
	require.Error(t, err)

	remaining, _ := store.ListByParent(7)
	require.Len(t, remaining, 1)
	assert.Equal(t, "stored_old1.jpg", remaining[0].Name)
}

func TestDeleteAll(t *testing.T) {
	store, files := &mockStore{}, newMockFiles()
	set := NewSet(store, files, 400)

	_, err := set.CreateBatch(7, uploads("a.jpg", "b.jpg"))
	require.NoError(t, err)

	require.NoError(t, set.DeleteAll(7))
	remaining, _ := store.ListByParent(7)
	assert.Empty(t, remaining)
	assert.Empty(t, files.stored)
}
