package domain

import "strings"

// UserProfile is mutable throughout a session and reset to the zero value on
// sign-out.
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

// Complete reports whether first name, last name and phone are all non-blank
// after trimming whitespace. Callers validate with this before invoking the
// stage machine's CompleteProfile.
func (p UserProfile) Complete() bool {
	return strings.TrimSpace(p.FirstName) != "" &&
		strings.TrimSpace(p.LastName) != "" &&
		strings.TrimSpace(p.Phone) != ""
}
