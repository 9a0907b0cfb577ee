package content

import (
	"errors"
	"fmt"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

var (
	ErrSchemaValidation           = errors.New("schema validation failed")
	ErrDanglingComponentReference = errors.New("dangling component reference")
)

// SchemaValidationError identifies an imported dataset record that is missing
// a required field or carries a value of the wrong type.
type SchemaValidationError struct {
	Locale  locale.Locale
	Dataset string
	Index   int
	Field   string
	Reason  string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("%s dataset %q record %d: field %q %s", e.Locale, e.Dataset, e.Index, e.Field, e.Reason)
}

func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrSchemaValidation
}

// DanglingComponentReferenceError reports an article block that names a
// component with no auxiliary data bag in the same tree.
type DanglingComponentReferenceError struct {
	Locale     locale.Locale
	BlockIndex int
	Name       ComponentName
}

func (e *DanglingComponentReferenceError) Error() string {
	return fmt.Sprintf("%s article block %d references component %q with no data", e.Locale, e.BlockIndex, e.Name)
}

func (e *DanglingComponentReferenceError) Is(target error) bool {
	return target == ErrDanglingComponentReference
}

// DanglingReferences lists every component reference in the tree that does
// not resolve.
func (lc *LocaleContent) DanglingReferences() []*DanglingComponentReferenceError {
	var dangling []*DanglingComponentReferenceError
	for i, b := range lc.Article {
		ref, ok := b.(ComponentReference)
		if !ok {
			continue
		}
		if _, found := lc.Component(ref.Name); !found {
			dangling = append(dangling, &DanglingComponentReferenceError{
				Locale:     lc.Locale,
				BlockIndex: i,
				Name:       ref.Name,
			})
		}
	}
	return dangling
}
