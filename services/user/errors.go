package user

import "errors"

// ErrUserNotFound indicates an id- or email-based lookup matched no user.
var ErrUserNotFound = errors.New("user not found")
