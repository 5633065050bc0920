package checkout

// State identifies a step of the checkout sequence. A run moves strictly
// forward; any step's failure lands in StateFailed with no automatic
// retry at this level.
type State string

const (
	StateIdle                 State = "IDLE"
	StateAuthCheck            State = "AUTH_CHECK"
	StateValidating           State = "VALIDATING"
	StateCreatingBooking      State = "CREATING_BOOKING"
	StateReservingSeats       State = "RESERVING_SEATS"
	StateRequestingSignature  State = "REQUESTING_SIGNATURE"
	StateRedirectingToGateway State = "REDIRECTING_TO_GATEWAY"
	StateSucceeded            State = "SUCCEEDED"
	StateFailed               State = "FAILED"
)
