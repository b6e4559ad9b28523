package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrPasswordTooLong    = errors.New("password must not exceed 72 bytes")

	ErrPokemonAlreadyExists = errors.New("pokemon already exists")
	ErrPokemonNotFound      = errors.New("pokemon not found")
	ErrRegionNotFound       = errors.New("region does not exist for this pokemon")
	ErrMissingPokemonID     = errors.New("pokemon id is required")
	ErrMissingRegionParams  = errors.New("pokemon id and region name are required")
	ErrInvalidPokemon       = errors.New("name, description, image and region names cannot be empty")

	ErrNotAuthenticated     = errors.New("user not authenticated")
	ErrMissingTrainerName   = errors.New("trainer name is required")
	ErrTrainerAlreadyExists = errors.New("a trainer already exists for this user")
	ErrTrainerNotFound      = errors.New("no trainer found for this user")
)
