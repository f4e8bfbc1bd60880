package models

import "time"

// Appointment is the model for a service booking (grooming, training,
// veterinary).
type Appointment struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	ServiceType string  `json:"serviceType"` // grooming, training, veterinary
	PetType     string  `json:"petType"`     // dog, cat, other
	PetBreed    *string `json:"petBreed,omitempty"`

	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"` // morning, afternoon, evening
	Notes           *string   `json:"notes,omitempty"`

	Status    string    `json:"status"`    // pending, confirmed, completed, cancelled
	CreatedAt time.Time `json:"createdAt"` // assigned by the store, immutable
}
