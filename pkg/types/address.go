package types

import "strings"

// Address is the postal block attached to a user profile.
type Address struct {
	Line    string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

// IsZero reports whether every field is empty.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Line) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.Country) == "" &&
		strings.TrimSpace(a.Pincode) == ""
}
