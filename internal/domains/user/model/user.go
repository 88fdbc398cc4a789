package model

// User mirrors the external identity provider's subject. Rows are
// created implicitly on a first review write (null username) or
// explicitly through the profile update.
type User struct {
	ID        string  `json:"id"` // identity provider subject
	Username  *string `json:"username"`
	CreatedAt int64   `json:"createdAt"` // epoch millis
}
