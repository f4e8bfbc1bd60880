package store

import "github.com/petsphere/petsphere-api/internal/models"

// UserPatch is a partial update for a user. Nil fields are left untouched.
type UserPatch struct {
	Username  *string
	Password  *string
	Email     *string
	FirstName *string
	LastName  *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Phone     *string
}

// GetUser returns the user with the given id, or nil if absent.
func (s *Store) GetUser(id int64) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.users[id])
}

// GetUserByUsername scans for a user with the given username.
// Usernames are unique across all users.
func (s *Store) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u)
		}
	}
	return nil
}

// GetUserByEmail scans for a user with the given email. Email uniqueness is
// the caller's responsibility at registration time; the store only looks up.
func (s *Store) GetUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u)
		}
	}
	return nil
}

// CreateUser stores a new user, assigning the next id. Any id supplied by
// the caller is overwritten.
func (s *Store) CreateUser(u models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.userID
	s.userID++
	s.users[u.ID] = &u
	return copyUser(&u)
}

// UpdateUser merges the patch into the existing user and returns the
// updated record, or nil if no such user exists.
func (s *Store) UpdateUser(id int64, patch UserPatch) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}

	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	if patch.Address != nil {
		u.Address = patch.Address
	}
	if patch.City != nil {
		u.City = patch.City
	}
	if patch.State != nil {
		u.State = patch.State
	}
	if patch.ZipCode != nil {
		u.ZipCode = patch.ZipCode
	}
	if patch.Phone != nil {
		u.Phone = patch.Phone
	}

	return copyUser(u)
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
