package types

import "fmt"

// ErrClass classifies diagnostics reported through GDAL's CPL error
// facility. The values match the CPLErr enumeration in cpl_error.h.
type ErrClass int

const (
	ErrNone    ErrClass = 0
	ErrDebug   ErrClass = 1
	ErrWarning ErrClass = 2
	ErrFailure ErrClass = 3
	ErrFatal   ErrClass = 4
)

func (c ErrClass) String() string {
	switch c {
	case ErrNone:
		return "None"
	case ErrDebug:
		return "Debug"
	case ErrWarning:
		return "Warning"
	case ErrFailure:
		return "Failure"
	case ErrFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("ErrClass(%d)", int(c))
	}
}

// ErrorHandler receives diagnostics forwarded from GDAL. code is the raw
// CPLErrorNum. Handlers may be invoked from any OS thread GDAL reports on,
// so they must be safe for concurrent use.
type ErrorHandler func(class ErrClass, code int, msg string)

// InvalidArgumentError reports input that was rejected before any GDAL call
// was made: a name with characters outside [A-Za-z0-9_], a value containing
// CR or LF, or a string that cannot be represented as a C string because it
// embeds a NUL byte. The operation that returns it has not modified the list.
type InvalidArgumentError struct {
	Msg string
}

var _ error = (*InvalidArgumentError)(nil)

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Msg
}

// CplError is an error recorded by GDAL's CPL error facility, as retrieved
// from the calling thread's last-error state. Code is the raw CPLErrorNum.
type CplError struct {
	Class ErrClass
	Code  int
	Msg   string
}

var _ error = (*CplError)(nil)

func (e *CplError) Error() string {
	return fmt.Sprintf("cpl %s error %d: %s", e.Class, e.Code, e.Msg)
}
