package enums

import "fmt"

// HolyCity identifies a sacred location where an e-Snan can be performed.
type HolyCity string

const (
	HolyCityPrayagraj HolyCity = "prayagraj"
	HolyCityHaridwar  HolyCity = "haridwar"
	HolyCityVaranasi  HolyCity = "varanasi"
	HolyCityRishikesh HolyCity = "rishikesh"
	HolyCityUjjain    HolyCity = "ujjain"
	HolyCityNashik    HolyCity = "nashik"
)

var validHolyCities = []HolyCity{
	HolyCityPrayagraj,
	HolyCityHaridwar,
	HolyCityVaranasi,
	HolyCityRishikesh,
	HolyCityUjjain,
	HolyCityNashik,
}

// String implements fmt.Stringer.
func (c HolyCity) String() string {
	return string(c)
}

// IsValid reports whether the value is a known HolyCity.
func (c HolyCity) IsValid() bool {
	for _, candidate := range validHolyCities {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseHolyCity converts raw input into a HolyCity.
func ParseHolyCity(value string) (HolyCity, error) {
	for _, candidate := range validHolyCities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid holy city %q", value)
}
