package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_DECODED_EMAIL_KEY        ContextKey = "decoded_email"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DCTRS_PRTL_"
)

const (
	MongoCollectionAppointmentOptions = "appointmentOptions"
	MongoCollectionBookings           = "bookings"
	MongoCollectionUsers              = "users"
	MongoCollectionPayments           = "payment"
	MongoCollectionDoctors            = "doctors"
)

const (
	RedisKeyAppointmentOptions = "appointment_options:templates"
)

const (
	UserRoleAdmin = "admin"
)

const (
	PaymentCurrencyUSD = "usd"
	PaymentMethodCard  = "card"
)

// BookingConflictMessageFormat mirrors the client-facing conflict text,
// parameterized by appointment date.
const BookingConflictMessageFormat = "you already booked on %s"

const LivenessMessage = "doctors portal server is running"
