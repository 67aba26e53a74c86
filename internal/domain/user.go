package domain

import "time"

// DefaultLanguage is assigned when a user is created without an explicit
// language preference.
const DefaultLanguage = "en"

type User struct {
	ID            int32     `json:"id"`
	IdentityToken string    `json:"identity_token"` // opaque token issued by the external identity provider
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	Language      string    `json:"language_preference"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}
