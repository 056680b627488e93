package checkout

import "strings"

// Form is the shipping and payment input. It is only checked for presence;
// nothing here is sent to a payment network.
type Form struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Validate returns a *ValidationError naming every blank field, or nil.
func (f Form) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"email", f.Email},
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"address", f.Address},
		{"city", f.City},
		{"postal_code", f.PostalCode},
		{"card_number", f.CardNumber},
		{"expiry", f.Expiry},
		{"cvv", f.CVV},
	}

	var missing []string
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
