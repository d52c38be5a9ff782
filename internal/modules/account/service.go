// README: Account service: authentication plus persisted profile and language.
package account

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"travelgenie/internal/infra"
)

const (
	userBlob     = "current_user"
	languageBlob = "language"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// Service authenticates against the identity provider and owns the persisted
// profile and interface-language blobs.
type Service struct {
	client *Client

	mu       sync.Mutex
	blobs    *infra.BlobStore
	user     *UserProfile
	language Language
}

// NewService restores the profile and language from their blobs; absent or
// corrupted blobs default to logged-out and English.
func NewService(client *Client, blobs *infra.BlobStore) *Service {
	s := &Service{client: client, blobs: blobs, language: LanguageEnglish}

	var u UserProfile
	if blobs.Load(userBlob, &u) {
		s.user = &u
	}
	var lang Language
	if blobs.Load(languageBlob, &lang) && ValidLanguage(lang) {
		s.language = lang
	}
	return s
}

func (s *Service) CurrentUser() (UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return UserProfile{}, false
	}
	return *s.user, true
}

func (s *Service) Language() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *Service) SetLanguage(lang Language) error {
	if !ValidLanguage(lang) {
		return errors.New("unsupported language")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	if err := s.blobs.Save(languageBlob, lang); err != nil {
		log.Printf("account: persist language: %v", err)
	}
	return nil
}

// Login authenticates and persists the resulting profile.
func (s *Service) Login(ctx context.Context, email, password string) (*UserProfile, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	pu, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	name := email
	if pu.Name != nil && *pu.Name != "" {
		name = *pu.Name
	} else if pu.Username != nil && *pu.Username != "" {
		name = *pu.Username
	}
	profileEmail := email
	if pu.Email != nil && *pu.Email != "" {
		profileEmail = *pu.Email
	}

	return s.setUser(UserProfile{
		UserID:        uuid.New(),
		ParseObjectID: &pu.ObjectID,
		SessionToken:  pu.SessionToken,
		Name:          name,
		Email:         profileEmail,
	}), nil
}

// Register creates the account and persists the resulting profile.
func (s *Service) Register(ctx context.Context, name, email, password string) (*UserProfile, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	pu, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	return s.setUser(UserProfile{
		UserID:        uuid.New(),
		ParseObjectID: &pu.ObjectID,
		SessionToken:  pu.SessionToken,
		Name:          name,
		Email:         email,
	}), nil
}

// Logout clears the profile and its blob.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.blobs.Delete(userBlob); err != nil {
		log.Printf("account: clear profile: %v", err)
	}
}

func (s *Service) setUser(u UserProfile) *UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	if err := s.blobs.Save(userBlob, u); err != nil {
		log.Printf("account: persist profile: %v", err)
	}
	return &u
}
