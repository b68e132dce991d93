package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
	"gte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientNotAuthorized                 = "unauthorized access"
	ErrClientForbiddenAccess               = "forbidden access"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientBookingNotFound               = "booking not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevURLParamIDValidationFailed = "URL param '%s' is not a valid identifier"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or has expired"
	ErrDevAuthGenerateToken         = "Failed to generate JWT"
	ErrDevAuthIdentityMissing       = "Decoded identity missing from request context"
	ErrDevAuthEmailMismatch         = "Authenticated email does not match requested email"
	ErrDevAuthNotAdmin              = "User does not have the admin role"
	ErrDevAuthUnknownEmail          = "No user record for the requested email"

	ErrDevDBFailedToFindDocument     = "Failed to find document on MongoDB"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document to MongoDB"
	ErrDevDBFailedToUpdateDocument   = "Failed to update document on MongoDB"
	ErrDevDBFailedToDeleteDocument   = "Failed to delete document on MongoDB"
	ErrDevDBFailedToIterateDocuments = "Failed to iterate documents on MongoDB"
	ErrDevDBStringNotObjectID        = "Given string is not a valid ObjectID"
	ErrDevDBBookingNotFound          = "No booking document for the given identifier"

	ErrDevRedisGetData = "Failed to get data from Redis"
	ErrDevRedisSetData = "Failed to set data to Redis"

	ErrDevPaymentGatewayCreateIntent = "Failed to create payment intent on the payment gateway"

	ErrDevMailerPublishMessage = "Failed to publish message to mailer queue"

	ErrDevCannotMarshalJSON = "Failed to marshal data to JSON"
)
