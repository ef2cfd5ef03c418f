package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every operation inside an Execute callback shares the same connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// AuthRepo returns an AuthRepository bound to the current transaction.
	AuthRepo() AuthRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository

	// MatchRepo returns a MatchRepository bound to the current transaction.
	MatchRepo() MatchRepository

	// ProposalRepo returns a ProposalRepository bound to the current transaction.
	ProposalRepo() ProposalRepository

	// AttendanceRepo returns an AttendanceRepository bound to the current transaction.
	AttendanceRepo() AttendanceRepository

	// MessageRepo returns a MessageRepository bound to the current transaction.
	MessageRepo() MessageRepository

	// RatingRepo returns a RatingRepository bound to the current transaction.
	RatingRepo() RatingRepository

	// BlackBookRepo returns a BlackBookRepository bound to the current transaction.
	BlackBookRepo() BlackBookRepository

	// RejectionRepo returns a RejectionRepository bound to the current transaction.
	RejectionRepo() RejectionRepository
}
