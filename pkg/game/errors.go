package game

import (
	"fmt"

	"github.com/showdown-games/showdown/pkg/game/types"
)

type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func IsInvalidInput(err error) bool {
	_, ok := err.(*ErrInvalidInput)
	return ok
}

type ErrInvalidPhase struct {
	Phase types.Phase
}

func (e *ErrInvalidPhase) Error() string {
	return fmt.Sprintf("operation not allowed in phase %s", e.Phase)
}

func IsInvalidPhase(err error) bool {
	_, ok := err.(*ErrInvalidPhase)
	return ok
}

type ErrUnauthorized struct {
	Reason string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

func IsUnauthorized(err error) bool {
	_, ok := err.(*ErrUnauthorized)
	return ok
}

type ErrAlreadyRevealed struct {
}

func (e *ErrAlreadyRevealed) Error() string {
	return "choice already revealed"
}

func IsAlreadyRevealed(err error) bool {
	_, ok := err.(*ErrAlreadyRevealed)
	return ok
}

type ErrCommitmentMismatch struct {
}

func (e *ErrCommitmentMismatch) Error() string {
	return "revealed choice and secret do not match the commitment"
}

func IsCommitmentMismatch(err error) bool {
	_, ok := err.(*ErrCommitmentMismatch)
	return ok
}
