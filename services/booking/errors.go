package booking

import "errors"

// ErrBookingNotFound indicates an id-based lookup matched no booking.
var ErrBookingNotFound = errors.New("booking not found")
