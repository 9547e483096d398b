package directory

import "errors"

var (
	// ErrNotPVRPath signals a path that is not handled by this provider at
	// all; the caller must try elsewhere.
	ErrNotPVRPath = errors.New("not a pvr path")

	// ErrMalformedPath signals a recognized namespace with an invalid
	// segment shape.
	ErrMalformedPath = errors.New("malformed pvr path")

	// ErrUnsupportedView signals an unknown value for the view option.
	ErrUnsupportedView = errors.New("unsupported value for url parameter 'view'")

	// ErrSearchNotFound signals a saved search id without a definition.
	ErrSearchNotFound = errors.New("saved search not found")
)
