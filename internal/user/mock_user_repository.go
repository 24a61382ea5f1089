package user

import "context"

// MockUserRepository is an in-memory Repository for service tests.
type MockUserRepository struct {
	Users []User
}

func (m *MockUserRepository) createUser(_ context.Context, user *User) error {
	m.Users = append(m.Users, *user)
	return nil
}

func (m *MockUserRepository) getUserByClerkID(_ context.Context, clerkID string) (*User, error) {
	for _, user := range m.Users {
		if user.ClerkID == clerkID {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MockUserRepository) updateUser(_ context.Context, user *User) error {
	for i := range m.Users {
		if m.Users[i].ID == user.ID {
			m.Users[i] = *user
			return nil
		}
	}
	return ErrUserNotFound
}
