package admin

import (
	"fmt"
	"strings"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

// ValidateListing requires a name and a description.
func ValidateListing(d domain.ListingDraft) error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", catalog.ErrInvalidDraft, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateProduct requires a name; the price may be zero but not negative.
func ValidateProduct(d domain.ProductDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: missing name", catalog.ErrInvalidDraft)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", catalog.ErrInvalidDraft)
	}
	return nil
}
