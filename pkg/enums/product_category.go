package enums

import "fmt"

// ProductCategory groups catalog entries the way the storefront renders them.
type ProductCategory string

const (
	ProductCategoryHolyWater   ProductCategory = "holy-water"
	ProductCategoryPrasadam    ProductCategory = "prasadam"
	ProductCategoryCombos      ProductCategory = "combos"
	ProductCategoryPhotography ProductCategory = "photography"
)

var validProductCategories = []ProductCategory{
	ProductCategoryHolyWater,
	ProductCategoryPrasadam,
	ProductCategoryCombos,
	ProductCategoryPhotography,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
