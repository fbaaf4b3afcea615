package service

import (
	"fmt"

	"github.com/guttosm/unicornpulse/internal/domain/models"
)

// InvalidCategoryError reports a filter value outside the field's observed domain.
type InvalidCategoryError struct {
	Field models.Field
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

// FilterByCategory returns the companies whose field equals value, in their
// original order, as a new Dataset. The input is never modified.
//
// The value must be one of the distinct values observed for field in the
// loaded dataset; otherwise an *InvalidCategoryError is returned instead of an
// empty result.
func FilterByCategory(ds *models.Dataset, field models.Field, value string) (*models.Dataset, error) {
	if !inDomain(ds.Domain(field), value) {
		return nil, &InvalidCategoryError{Field: field, Value: value}
	}
	return ds.Where(func(c models.Company) bool {
		v, _ := c.Category(field)
		return v == value
	}), nil
}

func inDomain(domain []string, value string) bool {
	for _, v := range domain {
		if v == value {
			return true
		}
	}
	return false
}
