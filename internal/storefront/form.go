package storefront

import (
	"strings"

	"storefront/internal/catalog"
)

// ProductForm is the raw text a user typed into a create or edit form.
type ProductForm struct {
	Title       string
	Price       string
	ImageURL    string
	Category    string
	Description string
}

// Fields validates the form and converts the decimal price to cents.
func (f ProductForm) Fields() (catalog.Fields, error) {
	required := []struct {
		label string
		value string
	}{
		{"Title", f.Title},
		{"Price", f.Price},
		{"Image URL", f.ImageURL},
		{"Category", f.Category},
		{"Description", f.Description},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return catalog.Fields{}, &FieldError{Field: field.label}
		}
	}

	cents, err := catalog.ParsePrice(f.Price)
	if err != nil {
		return catalog.Fields{}, err
	}

	return catalog.Fields{
		Title:       f.Title,
		PriceCents:  cents,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
		Description: f.Description,
	}, nil
}

func FormFromProduct(p catalog.Product) ProductForm {
	return ProductForm{
		Title:       p.Title,
		Price:       catalog.PriceInput(p.PriceCents),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Description: p.Description,
	}
}
