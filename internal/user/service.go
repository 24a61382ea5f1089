package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"github.com/finta-app/finta/internal/auth"
	"github.com/google/uuid"
)

const maxEmailLength = 254

var (
	ErrUnauthorized  = errors.New("Unauthorized")
	ErrUserNotFound  = errors.New("User not found")
	ErrInvalidEmail  = errors.New("email address is not valid")
	ErrInternalError = errors.New("internal Server Error")
)

type User struct {
	ID        string    `json:"id"`
	ClerkID   string    `json:"clerkId"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Currency  *string   `json:"currency,omitempty"`
	Locale    *string   `json:"locale,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpsertParams carries the profile fields of an explicit upsert. Nil
// pointer fields leave the stored value untouched.
type UpsertParams struct {
	ClerkID   string  `json:"clerkId"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	ImageURL  *string `json:"imageUrl"`
	Currency  *string `json:"currency"`
	Locale    *string `json:"locale"`
}

type Service interface {
	SyncFromIdentity(ctx context.Context, subject *auth.Subject) (string, error)
	GetCurrentUser(ctx context.Context, subject *auth.Subject) (*User, error)
	Upsert(ctx context.Context, subject *auth.Subject, params UpsertParams) (string, error)
	UpdatePreferences(ctx context.Context, subject *auth.Subject, currency, locale *string) (*User, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func validateEmailAddress(email string) error {
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// SyncFromIdentity finds or creates the caller's user row from the
// identity-provider claims. Existing profile fields only change when the
// provider reports a value: an empty claim never erases stored data, so a
// provider that momentarily returns no email cannot wipe the one on record.
// Repeating the call with identical claims only advances updated_at.
func (s *service) SyncFromIdentity(ctx context.Context, subject *auth.Subject) (string, error) {
	if subject == nil {
		return "", ErrUnauthorized
	}

	now := s.now()

	existing, err := s.repo.getUserByClerkID(ctx, subject.ID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("could not sync user: %w", err)
	}

	if existing != nil {
		if subject.Email != "" {
			existing.Email = subject.Email
		}
		if subject.GivenName != "" {
			existing.FirstName = &subject.GivenName
		}
		if subject.FamilyName != "" {
			existing.LastName = &subject.FamilyName
		}
		if subject.PictureURL != "" {
			existing.ImageURL = &subject.PictureURL
		}
		existing.UpdatedAt = now

		if err := s.repo.updateUser(ctx, existing); err != nil {
			return "", fmt.Errorf("could not sync user: %w", err)
		}
		return existing.ID, nil
	}

	newUser := &User{
		ID:        uuid.NewString(),
		ClerkID:   subject.ID,
		Email:     subject.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if subject.GivenName != "" {
		newUser.FirstName = &subject.GivenName
	}
	if subject.FamilyName != "" {
		newUser.LastName = &subject.FamilyName
	}
	if subject.PictureURL != "" {
		newUser.ImageURL = &subject.PictureURL
	}

	if err := s.repo.createUser(ctx, newUser); err != nil {
		return "", fmt.Errorf("could not sync user: %w", err)
	}
	return newUser.ID, nil
}

func (s *service) GetCurrentUser(ctx context.Context, subject *auth.Subject) (*User, error) {
	if subject == nil {
		return nil, nil
	}

	existing, err := s.repo.getUserByClerkID(ctx, subject.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not get current user: %w", err)
	}
	return existing, nil
}

// Upsert merges the provided profile fields into the caller's user row, or
// creates the row when absent. Only the subject itself may upsert its own
// row; an identity mismatch is rejected before any field is touched.
func (s *service) Upsert(ctx context.Context, subject *auth.Subject, params UpsertParams) (string, error) {
	if subject == nil || subject.ID != params.ClerkID {
		return "", ErrUnauthorized
	}

	if params.Email != "" {
		if err := validateEmailAddress(params.Email); err != nil {
			return "", err
		}
	}

	now := s.now()

	existing, err := s.repo.getUserByClerkID(ctx, params.ClerkID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("could not upsert user: %w", err)
	}

	if existing != nil {
		existing.Email = params.Email
		if params.FirstName != nil {
			existing.FirstName = params.FirstName
		}
		if params.LastName != nil {
			existing.LastName = params.LastName
		}
		if params.ImageURL != nil {
			existing.ImageURL = params.ImageURL
		}
		if params.Currency != nil {
			existing.Currency = params.Currency
		}
		if params.Locale != nil {
			existing.Locale = params.Locale
		}
		existing.UpdatedAt = now

		if err := s.repo.updateUser(ctx, existing); err != nil {
			return "", fmt.Errorf("could not upsert user: %w", err)
		}
		return existing.ID, nil
	}

	newUser := &User{
		ID:        uuid.NewString(),
		ClerkID:   params.ClerkID,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		ImageURL:  params.ImageURL,
		Currency:  params.Currency,
		Locale:    params.Locale,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.createUser(ctx, newUser); err != nil {
		return "", fmt.Errorf("could not upsert user: %w", err)
	}
	return newUser.ID, nil
}

func (s *service) UpdatePreferences(ctx context.Context, subject *auth.Subject, currency, locale *string) (*User, error) {
	if subject == nil {
		return nil, ErrUnauthorized
	}

	existing, err := s.repo.getUserByClerkID(ctx, subject.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not update preferences: %w", err)
	}

	if currency != nil {
		existing.Currency = currency
	}
	if locale != nil {
		existing.Locale = locale
	}
	existing.UpdatedAt = s.now()

	if err := s.repo.updateUser(ctx, existing); err != nil {
		return nil, fmt.Errorf("could not update preferences: %w", err)
	}
	return existing, nil
}
