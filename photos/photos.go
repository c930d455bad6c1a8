// Package photos manages an ordered photo set attached to a parent entity
// (product or slider). Records carry an explicit order assigned per upload
// batch; deleting one leaves gaps and reordering one does not touch its
// siblings.
package photos

import (
	"mime/multipart"

	"github.com/pkg/errors"

	"github.com/fiorino-shop/florista-api/validation"
)

// ErrNotFound is returned when a photo id resolves to nothing.
var ErrNotFound = errors.New("photo not found")

// Record is one photo of an ordered set, independent of which table it is
// stored in.
type Record struct {
	ID       uint   `json:"id"`
	ParentID uint   `json:"parent_id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
}

// Store persists photo records for one parent kind.
type Store interface {
	Insert(rec *Record) error
	ListByParent(parentID uint) ([]Record, error)
	Find(id uint) (*Record, error)
	Delete(id uint) error
	UpdateOrder(id uint, order int) error
}

// FileStore is the slice of the photo file store the set needs.
type FileStore interface {
	validation.ImageChecker
	Upload(*multipart.FileHeader) (string, error)
	Delete(name string) error
}

type Set struct {
	store Store
	files FileStore
	maxKB int64
}

func NewSet(store Store, files FileStore, maxKB int64) *Set {
	return &Set{store: store, files: files, maxKB: maxKB}
}

// Validate runs the image predicates over a batch and reports every failing
// upload.
func (s *Set) Validate(uploads []*multipart.FileHeader) validation.Violations {
	return validation.Photos("photos", uploads, s.files, s.maxKB)
}

// CreateBatch validates the whole batch up front, then stores each upload
// with an order equal to its 1-based position in the submitted sequence.
// Any validation failure rejects the batch before a single write happens;
// a storage failure mid-batch deletes the files this call already stored.
func (s *Set) CreateBatch(parentID uint, uploads []*multipart.FileHeader) ([]Record, error) {
	if v := s.Validate(uploads); len(v) > 0 {
		return nil, v
	}
	return s.storeBatch(parentID, uploads)
}

// ReplaceBatch swaps the parent's entire photo set: validates the new
// uploads first, then deletes every existing record and file, then persists
// the new ones with fresh order starting at 1.
func (s *Set) ReplaceBatch(parentID uint, uploads []*multipart.FileHeader) ([]Record, error) {
	if v := s.Validate(uploads); len(v) > 0 {
		return nil, v
	}

	existing, err := s.store.ListByParent(parentID)
	if err != nil {
		return nil, errors.Wrap(err, "list existing photos")
	}
	for _, rec := range existing {
		if err := s.store.Delete(rec.ID); err != nil {
			return nil, errors.Wrap(err, "delete existing photo record")
		}
		if err := s.files.Delete(rec.Name); err != nil {
			return nil, errors.Wrap(err, "delete existing photo file")
		}
	}

	return s.storeBatch(parentID, uploads)
}

// DeleteAll removes every record and file of a parent's set, for parent
// deletion.
func (s *Set) DeleteAll(parentID uint) error {
	existing, err := s.store.ListByParent(parentID)
	if err != nil {
		return err
	}
	for _, rec := range existing {
		if err := s.store.Delete(rec.ID); err != nil {
			return err
		}
		if err := s.files.Delete(rec.Name); err != nil {
			return err
		}
	}
	return nil
}

// DeleteOne removes a single record and its backing file. Siblings keep
// their order values; removing the parent's last photo is fine.
func (s *Set) DeleteOne(id uint) error {
	rec, err := s.store.Find(id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	return s.files.Delete(rec.Name)
}

// Reorder overwrites one record's order. Collisions with sibling orders are
// not checked; display sorts by (order, id) so duplicates stay stable.
func (s *Set) Reorder(id uint, order int) error {
	if order < 1 {
		var v validation.Violations
		v.Add("order", "order must be a positive integer")
		return v
	}
	return s.store.UpdateOrder(id, order)
}

func (s *Set) storeBatch(parentID uint, uploads []*multipart.FileHeader) ([]Record, error) {
	records := make([]Record, 0, len(uploads))
	stored := make([]string, 0, len(uploads))

	fail := func(err error, msg string) ([]Record, error) {
		for _, name := range stored {
			if delErr := s.files.Delete(name); delErr != nil {
				err = errors.Wrapf(err, "also failed to clean up %s", name)
			}
		}
		return nil, errors.Wrap(err, msg)
	}

	for i, upload := range uploads {
		name, err := s.files.Upload(upload)
		if err != nil {
			return fail(err, "store photo")
		}
		stored = append(stored, name)

		rec := Record{ParentID: parentID, Name: name, Order: i + 1}
		if err := s.store.Insert(&rec); err != nil {
			return fail(err, "insert photo record")
		}
		records = append(records, rec)
	}
	return records, nil
}
