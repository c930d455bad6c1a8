// Package validation accumulates field-level violations so every failing
// input is reported in one response, not just the first. The same functions
// serve the create and update paths.
package validation

import (
	"fmt"
	"mime/multipart"
	"strings"
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Field + ": " + violation.Message
	}
	return strings.Join(msgs, "; ")
}

// OrNil lets callers return a Violations value through an error without the
// typed-nil trap.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// ImageChecker is the slice of the photo store the validators need.
type ImageChecker interface {
	IsImage(*multipart.FileHeader) bool
	CheckSize(*multipart.FileHeader, int64) bool
}

// Photos validates a batch of uploads against the image predicates. Every
// failing item is reported; a batch with any violation must not be persisted
// at all.
func Photos(field string, files []*multipart.FileHeader, checker ImageChecker, maxKB int64) Violations {
	var out Violations
	for _, file := range files {
		if !checker.IsImage(file) {
			out.Add(field, fmt.Sprintf("%s should be in image format", file.Filename))
		} else if !checker.CheckSize(file, maxKB) {
			out.Add(field, fmt.Sprintf("%s's size should be smaller than %dkb", file.Filename, maxKB))
		}
	}
	return out
}

// NormalizeName is the comparison key for the best-effort product name
// uniqueness check.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ProductLookups are the existence checks product validation needs from the
// store. NameTaken must compare normalized names and may exclude one product
// id (the one being updated).
type ProductLookups struct {
	NameTaken      func(normalized string, excludeID uint) (bool, error)
	CategoryExists func(id uint) (bool, error)
}

// ProductFields runs the write-time checks shared by product create and
// update: duplicate name (case/whitespace-insensitive) and category
// existence. Lookup failures surface as an error, not a violation.
func ProductFields(name string, categoryID uint, excludeID uint, lookups ProductLookups) (Violations, error) {
	var out Violations

	taken, err := lookups.NameTaken(NormalizeName(name), excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		out.Add("name", "this name already exists")
	}

	exists, err := lookups.CategoryExists(categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		out.Add("category_id", "this category doesn't exist")
	}
	return out, nil
}
