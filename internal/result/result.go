// Package result defines the uniform outcome type returned by every fallible
// operation in the system.
//
// WHY NOT PLAIN Go ERRORS?
// A missing video, a duplicate username, or a rejected comment deletion is not
// an exceptional condition — it is a normal business outcome the caller must
// render. Returning these through the error channel would force every caller
// to type-switch on sentinel errors just to print a message. Instead, every
// mutating or query operation that can fail returns a Result: a status code,
// a human-readable message, and (when the operation created something) the
// new entity's id. Go errors are reserved for genuine faults — a broken
// search index, an unreadable config — never for expected outcomes.
package result

// Status classifies the outcome of an operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusNotFound
	StatusAlreadyExists
	StatusPermissionDenied
	StatusInvalidInput
	// StatusNotLoggedIn is minted only by the caller holding session state
	// (the menu shell); core operations never return it.
	StatusNotLoggedIn
)

// String returns a machine-readable name for the status, used in logs.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not_found"
	case StatusAlreadyExists:
		return "already_exists"
	case StatusPermissionDenied:
		return "permission_denied"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusNotLoggedIn:
		return "not_logged_in"
	default:
		return "unknown"
	}
}

// Result is the uniform (status, message, id) triple.
// ID is 0 unless the operation minted a new identifier (entity ids start at 1).
type Result struct {
	Status  Status
	Message string
	ID      int64
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Constructor helpers — one per status keeps call sites short and makes the
// status impossible to mistype.

func Success(message string) Result {
	return Result{Status: StatusSuccess, Message: message}
}

// SuccessID is Success plus the id of a newly created entity.
func SuccessID(message string, id int64) Result {
	return Result{Status: StatusSuccess, Message: message, ID: id}
}

func NotFound(message string) Result {
	return Result{Status: StatusNotFound, Message: message}
}

func AlreadyExists(message string) Result {
	return Result{Status: StatusAlreadyExists, Message: message}
}

func PermissionDenied(message string) Result {
	return Result{Status: StatusPermissionDenied, Message: message}
}

func InvalidInput(message string) Result {
	return Result{Status: StatusInvalidInput, Message: message}
}

func NotLoggedIn(message string) Result {
	return Result{Status: StatusNotLoggedIn, Message: message}
}
