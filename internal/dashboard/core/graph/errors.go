package graph

import "errors"

var (
	ErrUnknownControl   = errors.New("unknown control")
	ErrUnknownView      = errors.New("unknown view")
	ErrUnknownTable     = errors.New("unknown table")
	ErrDuplicateControl = errors.New("control already exists")
	ErrDuplicateView    = errors.New("view already registered")
	ErrInvalidSelection = errors.New("selection value not among control options")
	ErrInvalidView      = errors.New("invalid view spec")
)
