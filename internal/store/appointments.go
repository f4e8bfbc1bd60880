package store

import (
	"sort"

	"github.com/petsphere/petsphere-api/internal/models"
)

// GetAppointment returns the appointment with the given id, or nil if
// absent.
func (s *Store) GetAppointment(id int64) *models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAppointment(s.appointments[id])
}

// GetAppointmentsByUser returns all of a user's bookings in insertion
// order.
func (s *Store) GetAppointmentsByUser(userID int64) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, a := range s.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateAppointment stores a new booking, assigning the next id and the
// creation timestamp. Any id or CreatedAt supplied by the caller is
// overwritten.
func (s *Store) CreateAppointment(a models.Appointment) *models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.appointmentID
	s.appointmentID++
	a.CreatedAt = s.now()
	s.appointments[a.ID] = &a
	return copyAppointment(&a)
}

// UpdateAppointmentStatus writes a new status string on the booking and
// returns the updated record, or nil if no such booking exists.
func (s *Store) UpdateAppointmentStatus(id int64, status string) *models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil
	}
	a.Status = status
	return copyAppointment(a)
}

func copyAppointment(a *models.Appointment) *models.Appointment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
