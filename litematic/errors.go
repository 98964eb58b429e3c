package litematic

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat marks every structural problem found in a document. Import never returns a partial
// result together with it.
var ErrInvalidFormat = errors.New("invalid litematic")

func invalidf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, a...))
}
