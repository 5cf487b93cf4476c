// Package entities contains core business entities.
package entities

// User is the acting identity supplied by the session layer.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
