// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for date proposal persistence.
var (
	// ErrProposalNotFound is returned when a date proposal is not found.
	ErrProposalNotFound = errors.New("date proposal not found")
	// ErrProposalConflict is returned when a conditional proposal update
	// matched no row, meaning the proposal status changed concurrently.
	ErrProposalConflict = errors.New("date proposal status changed concurrently")
)

// ProposalRepository defines the interface for date proposal persistence.
type ProposalRepository interface {
	// Create persists a new proposal with its options.
	Create(ctx context.Context, proposal *entity.DateProposal) error

	// FindByID retrieves a proposal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DateProposal, error)

	// FindByMatch retrieves the proposal attached to a match, if any.
	FindByMatch(ctx context.Context, matchID uuid.UUID) (*entity.DateProposal, error)

	// SelectOption records the chosen option index and moves the proposal
	// from proposed to selected as a single conditional update. It returns
	// ErrProposalConflict when the proposal is no longer in proposed status.
	SelectOption(ctx context.Context, id uuid.UUID, optionIndex int) error

	// UpdateStatus moves a proposal between statuses as a single conditional
	// update. It returns ErrProposalConflict when the proposal is no longer
	// in the expected from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DateStatus) error
}
