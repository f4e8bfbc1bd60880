package models

// User is the model for a registered customer account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // scrypt hash, never sent to clients
	Email    string `json:"email"`

	// --- Profile Fields (Pointers = Clean JSON) ---
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}
