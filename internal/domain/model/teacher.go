package model

// Teacher is an authenticated staff identity resolved from the
// credential store. Passwords never leave the repository layer.
type Teacher struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
