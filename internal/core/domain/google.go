package domain

// GoogleUserInfo is the subset of the Google ID-token payload the auth flow
// consumes.
type GoogleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
