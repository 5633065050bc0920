package checkout

// Request carries the passenger form fields alongside the caller
// identity resolved by the HTTP layer.
type Request struct {
	UnitID        string `json:"unit_id" binding:"required"`
	PassengerName string `json:"passenger_name"`
	Email         string `json:"email"`
	Contact       string `json:"contact"`

	// Filled from the request context, never from the body.
	Token     string `json:"-"`
	SessionID string `json:"-"`
	From      string `json:"-"`
}
