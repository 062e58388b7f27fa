package types

import (
	"errors"
	"fmt"
)

// Container load errors. Each leaves the container unchanged.
var (
	ErrOverfill        = errors.New("capacity exceeded")
	ErrWrongContents   = errors.New("contents do not match cargo already loaded")
	ErrTemperature     = errors.New("set point below the cargo's minimum temperature")
	ErrInvalidMass     = errors.New("mass must be positive")
	ErrInvalidContents = errors.New("contents must name a cargo")
	ErrNilContainer    = errors.New("container is nil")
)

// Ship limit errors. Both match ErrOverfill under errors.Is.
var (
	ErrWeightLimit = fmt.Errorf("ship weight limit: %w", ErrOverfill)
	ErrCountLimit  = fmt.Errorf("ship container limit: %w", ErrOverfill)
)

// Ownership and fleet errors.
var (
	ErrAlreadyAboard     = errors.New("container is already aboard a ship")
	ErrNilShip           = errors.New("ship is nil")
	ErrShipNotFound      = errors.New("ship not found")
	ErrDuplicateShip     = errors.New("ship name already in fleet")
	ErrContainerNotFound = errors.New("container not found")
)
