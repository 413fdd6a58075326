package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameOver       = errors.New("game over")
	ErrInvalidInput   = errors.New("invalid input")

	ErrUnknownStrategy = errors.New("unknown bot strategy")
)

// NotFoundError reports an operation on an id that is not in the store.
// It matches ErrPlayerNotFound with errors.Is.
type NotFoundError struct {
	Msg string
}

// NewNotFoundError formats a NotFoundError message
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrPlayerNotFound
}

// ValidationError reports caller input that was rejected before any state changed.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// GameOverError reports a guess made after the round ran out of attempts.
// It matches ErrGameOver with errors.Is.
type GameOverError struct {
	ID PlayerID
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("Game over! Player id=%d has no more attempts.", e.ID)
}

func (e *GameOverError) Is(target error) bool {
	return target == ErrGameOver
}
