package models

// User represents a platform consumer.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"` // bcrypt hash; never serialized or returned
	Phone        string      `json:"phone"`
	Location     GeoLocation `json:"location"`
	AvatarURL    string      `json:"avatarUrl"`
}
