package services

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidSession is returned when a presented session token is
	// malformed, expired, or revoked.
	ErrInvalidSession = errors.New("invalid session")
)
