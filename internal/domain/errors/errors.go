package errors

import "errors"

var (
	ErrUnknownCity       = errors.New("city is not in the coordinate table")
	ErrNoRouteFound      = errors.New("no route found")
	ErrInvalidDate       = errors.New("invalid travel date, expected DD.MM.YYYY")
	ErrTicketsNotCached  = errors.New("tickets not cached")
	ErrInvalidSearch     = errors.New("invalid search request")
	ErrSameOriginAndDest = errors.New("origin equals destination")
)
