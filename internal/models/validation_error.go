package models

type ValidationErrorCode string

const (
	CodeEmptyName             ValidationErrorCode = "EMPTY_NAME"
	CodeInvalidDateRange      ValidationErrorCode = "INVALID_DATE_RANGE"
	CodeInvalidDateFormat     ValidationErrorCode = "INVALID_DATE_FORMAT"
	CodeOverlappingTimeSlots  ValidationErrorCode = "OVERLAPPING_TIME_SLOTS"
	CodeEmptyScreenSelection  ValidationErrorCode = "EMPTY_SCREEN_SELECTION"
	CodeMediaSizeExceedsLimit ValidationErrorCode = "MEDIA_SIZE_EXCEEDS_LIMIT"
	CodeMediaTypeNotAllowed   ValidationErrorCode = "MEDIA_TYPE_NOT_ALLOWED"
	CodeInvalidTimeFormat     ValidationErrorCode = "INVALID_TIME_FORMAT"
)

// AllValidationErrorCodes lists the closed set of codes in declaration order.
func AllValidationErrorCodes() []ValidationErrorCode {
	return []ValidationErrorCode{
		CodeEmptyName,
		CodeInvalidDateRange,
		CodeInvalidDateFormat,
		CodeOverlappingTimeSlots,
		CodeEmptyScreenSelection,
		CodeMediaSizeExceedsLimit,
		CodeMediaTypeNotAllowed,
		CodeInvalidTimeFormat,
	}
}

func (c ValidationErrorCode) IsValid() bool {
	for _, code := range AllValidationErrorCodes() {
		if c == code {
			return true
		}
	}
	return false
}

// ValidationError is a recoverable business-rule violation on a draft.
type ValidationError struct {
	Code    ValidationErrorCode `json:"code"`
	Message string              `json:"message"`
}

// ErrorList is a list of validation errors that always holds at least one
// entry. The zero value is not usable; build one with NewErrorList.
type ErrorList struct {
	first ValidationError
	rest  []ValidationError
}

func NewErrorList(first ValidationError, rest ...ValidationError) ErrorList {
	return ErrorList{first: first, rest: append([]ValidationError(nil), rest...)}
}

// ErrorListFrom builds an ErrorList from a slice, reporting false when the
// slice is empty.
func ErrorListFrom(errs []ValidationError) (ErrorList, bool) {
	if len(errs) == 0 {
		return ErrorList{}, false
	}
	return NewErrorList(errs[0], errs[1:]...), true
}

func (l ErrorList) First() ValidationError { return l.first }

func (l ErrorList) Len() int { return 1 + len(l.rest) }

// Errors returns a copy of every error, in the order they were recorded.
func (l ErrorList) Errors() []ValidationError {
	out := make([]ValidationError, 0, l.Len())
	out = append(out, l.first)
	return append(out, l.rest...)
}

// SystemError is an unrecoverable failure reported by the host.
type SystemError struct {
	Message string `json:"message"`
}

func (e SystemError) Error() string {
	return e.Message
}
