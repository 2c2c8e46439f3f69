// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	themesState state = iota
	galleryState
	widgetsState
	detailState
	queryState
	errorState
)
