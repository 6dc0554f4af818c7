package analytics

import "errors"

var (
	// ErrInvalidFilterKind is returned for an unrecognised time-window selector.
	ErrInvalidFilterKind = errors.New("invalid filter kind")
	// ErrMalformedLineItem is returned when a line item has no resolvable id or price.
	ErrMalformedLineItem = errors.New("malformed line item")
)
