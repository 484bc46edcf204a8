package credentials

import "errors"

var (
	// ErrNoCredentials is returned by Store.Load when nothing has been saved yet.
	ErrNoCredentials = errors.New("no stored credentials")
	ErrNotLoggedIn   = errors.New("not logged in")
)
