package enums

import "fmt"

// MediaKind classifies uploaded objects so the presign layer can enforce
// mime-type and size policy per kind.
type MediaKind string

const (
	MediaKindSnanPhoto MediaKind = "snan_photo"
	MediaKindProfile   MediaKind = "profile"
	MediaKindProduct   MediaKind = "product"
)

var validMediaKinds = []MediaKind{
	MediaKindSnanPhoto,
	MediaKindProfile,
	MediaKindProduct,
}

// String implements fmt.Stringer.
func (m MediaKind) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MediaKind.
func (m MediaKind) IsValid() bool {
	for _, candidate := range validMediaKinds {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMediaKind converts raw input into a MediaKind.
func ParseMediaKind(value string) (MediaKind, error) {
	for _, candidate := range validMediaKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid media kind %q", value)
}
