package domain

import "strings"

// ErrorCode classifies order transfer failures for local records and the
// helper backend.
type ErrorCode int

const (
	ErrCodeCritical    ErrorCode = 1
	ErrCodeCartIsEmpty ErrorCode = 2
	ErrCodeTimeout     ErrorCode = 3
	ErrCodeStopList    ErrorCode = 4
	ErrCodeNotFound    ErrorCode = 5
	ErrCodeUnknown     ErrorCode = 6
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeCritical:
		return "CRITICAL"
	case ErrCodeCartIsEmpty:
		return "CRITICAL_CART_IS_EMPTY"
	case ErrCodeTimeout:
		return "TIMEOUT"
	case ErrCodeStopList:
		return "STOP_LIST"
	case ErrCodeNotFound:
		return "NOT_FOUND"
	case ErrCodeUnknown:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

var errorPatterns = []struct {
	substr string
	code   ErrorCode
}{
	{"timeout", ErrCodeTimeout},
	{"timed out", ErrCodeTimeout},
	{"stop list", ErrCodeStopList},
	{"stop-list", ErrCodeStopList},
	{"not found", ErrCodeNotFound},
}

// ClassifyError matches the fault message against known patterns, falling
// back to def when nothing matches.
func ClassifyError(message string, def ErrorCode) ErrorCode {
	lower := strings.ToLower(message)
	for _, p := range errorPatterns {
		if strings.Contains(lower, p.substr) {
			return p.code
		}
	}
	return def
}
