package window

import (
	"errors"
	"fmt"
)

var (
	errUnknownType          = errors.New("window: unknown window type")
	errChebyshevTooShort    = errors.New("window: dolph-chebyshev window needs at least 2 points")
	errChebyshevAttenuation = errors.New("window: dolph-chebyshev attenuation must be positive")
)

func validateLength(length int) error {
	return fmt.Errorf("window: invalid length %d", length)
}
