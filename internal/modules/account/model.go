// README: User profile and interface-language settings.
package account

import "github.com/google/uuid"

// UserProfile is the locally held view of the authenticated user. The core only
// consumes it; credentials never leave the identity-provider client.
type UserProfile struct {
	UserID        uuid.UUID `json:"userId"`
	ParseObjectID *string   `json:"parseObjectId,omitempty"`
	SessionToken  *string   `json:"sessionToken,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
)

// ValidLanguage reports whether l is a supported interface language.
func ValidLanguage(l Language) bool {
	return l == LanguageEnglish || l == LanguageRussian
}
