package values

type contextKey string

// ContextTracingKey carries the tracing context through a request.
const ContextTracingKey = contextKey("tracing-context")

// Keys for the authenticated caller's identity set by RequireLogin.
const (
	ContextUserIDKey         = contextKey("user-id")
	ContextUserRoleKey       = contextKey("user-role")
	ContextUserDepartmentKey = contextKey("user-department")
)

// Request headers recognised by the tracing middleware.
const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

// Response status strings. Handlers return these; util.StatusCode maps
// them onto HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	NoWork         = "no-work"
)
