package validation

import (
	"regexp"

	"github.com/TaylenH/apiDirectory/internal/models"
)

// nameRe matches the allowed product name charset at the allowed length.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9- ]{3,24}$`)

// ProductID checks the format of an id. Existence conflicts are the
// service's concern, not handled here.
func ProductID(id int) error {
	if id == 0 {
		return models.ErrProductIDMissing
	}
	if id < 1 {
		return models.ErrInvalidProductID
	}
	return nil
}

// ProductName checks length (3-24) and charset (letters, digits,
// hyphens, spaces).
func ProductName(name string) error {
	if !nameRe.MatchString(name) {
		return models.ErrInvalidProductName
	}
	return nil
}

// Price checks the inclusive range [0.01, 9999].
func Price(price float64) error {
	if price < 0.01 || price > 9999 {
		return models.ErrInvalidPrice
	}
	return nil
}

// Stock checks the inclusive range [0, 9999].
func Stock(stock int) error {
	if stock < 0 || stock > 9999 {
		return models.ErrInvalidStock
	}
	return nil
}
