package domain

// Credentials is the demo credential record, keyed by sign-in email. Values
// are bcrypt hashes. Unlike the profile, credentials survive sign-out so a
// returning user signs back in with the same password.
type Credentials map[string]string
