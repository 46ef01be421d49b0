package rpsl

import (
	"github.com/pkg/errors"
)

// Error kinds. Returned errors wrap one of these with a message naming the
// offending attribute or object type; test with errors.Is or errors.Cause.
var (
	EInvalidDataType  = errors.New("invalid data type")
	EInvalidValue     = errors.New("invalid value")
	EInvalidAttribute = errors.New("invalid attribute")
	EIncompleteObject = errors.New("incomplete object")
)

// IsKind reports whether err is (or wraps) the given kind sentinel.
func IsKind(err, kind error) bool {
	return errors.Is(err, kind)
}
