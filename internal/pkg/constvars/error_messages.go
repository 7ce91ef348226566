package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"dive":     "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientNotAuthorized                 = "not authorized"
	ErrClientAccessDenied                  = "access denied"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "user already exists"
	ErrClientTestAlreadyExists             = "test already exists"
	ErrClientHospitalConfigNotFound        = "hospital configuration not found"
	ErrClientTestsNotFound                 = "one or more tests not found"
	ErrClientBillNotFound                  = "bill not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientBrokerNotFound                = "broker not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDuplicateBillNumber           = "could not allocate a unique bill number, please retry"
	ErrClientSharePercentagesSum           = "share percentages must add up to 100%"
	ErrClientInvalidSubtotal               = "subtotal must be a non-negative amount"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded   = "server process exceeded the given deadline"
	ErrDevServerProcess            = "unexpected failure while processing the request"
	ErrDevInvalidCredentials       = "email and password combination did not match any user"
	ErrDevFailedToHashPassword     = "failed hashing password with bcrypt"
	ErrDevAuthGenerateToken        = "failed generating JWT token"
	ErrDevAuthSigningMethod        = "unexpected JWT signing method"
	ErrDevAuthTokenMissing         = "authorization header missing or empty"
	ErrDevAuthTokenInvalid         = "JWT token invalid or expired"
	ErrDevAuthSessionNotFound      = "session not found in session store"
	ErrDevRoleNotAllowed           = "caller role is not in the allowed role set"
	ErrDevEmailAlreadyExists       = "a user document with this email already exists"
	ErrDevTestAlreadyExists        = "a test document with this name already exists"
	ErrDevHospitalConfigNotFound   = "singleton hospital document is absent"
	ErrDevTestCountMismatch        = "requested test ids did not all resolve"
	ErrDevBillNumberExhausted      = "bill number generation exhausted retry budget on duplicate key"
	ErrDevNegativeSubtotal         = "share calculation received a negative or non-finite subtotal"
	ErrDevSharePercentagesSum      = "hospital, doctor and broker share percentages do not sum to 100"
	ErrDevDBFailedToFindDocument   = "database failed to find document"
	ErrDevDBFailedToInsertDocument = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument = "database failed to update document"
	ErrDevDBFailedToDeleteDocument = "database failed to delete document"
	ErrDevDBFailedToIterateCursor  = "database failed to iterate documents cursor"
	ErrDevDBFailedToAggregate      = "database failed to run aggregation pipeline"
	ErrDevDBStringNotObjectID      = "given string cannot be converted to mongo ObjectID"
	ErrDevRedisSetData             = "redis failed to set data"
	ErrDevRedisGetData             = "redis failed to get data"
	ErrDevRedisDeleteData          = "redis failed to delete data"
	ErrDevRabbitMQPublish          = "rabbitmq failed to publish message to queue %s"
	ErrDevMinioFailedToPutObject   = "minio failed to create object in bucket %s"
)
