package model

import "errors"

// Common errors used across the application
var (
	// Fleet and placement errors
	ErrInvalidFleet     = errors.New("invalid fleet")
	ErrFleetTooDense    = errors.New("fleet does not fit on the board")
	ErrPlacementStarved = errors.New("ship placement gave up after repeated restarts")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidGameMode = errors.New("invalid game mode")
	ErrNotSideTurn     = errors.New("not this side's turn")
	ErrGameComplete    = errors.New("game is already complete")
	ErrGameAbandoned   = errors.New("game has been abandoned")

	// Bot errors
	ErrNoTargetAvailable  = errors.New("no untried cell left to target")
	ErrUnknownBotStrategy = errors.New("unknown bot strategy")
)
