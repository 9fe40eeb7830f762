package extract

import "fmt"

// ExtractionError aborts the whole run. Anything that is merely "this
// article is not a dobijecka announcement" is reported through ok flags
// instead, never through this type.
type ExtractionError struct {
	msg string
}

func (e *ExtractionError) Error() string {
	return e.msg
}

func Errorf(format string, args ...any) *ExtractionError {
	return &ExtractionError{msg: fmt.Sprintf(format, args...)}
}
