package postgres

import (
	"context"
	"time"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// proposalRepository implements the domain's ProposalRepository interface using GORM.
type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository is the constructor for proposalRepository.
func NewProposalRepository(db *gorm.DB) repository.ProposalRepository {
	return &proposalRepository{db: db}
}

// Create persists a new proposal with its options. The unique index on
// match_id rejects a second proposal for the same match.
func (repo *proposalRepository) Create(ctx context.Context, proposal *entity.DateProposal) error {
	proposalM := fromProposalDomain(proposal)

	if err := repo.db.WithContext(ctx).Create(proposalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("match already has a date proposal")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create date proposal")
	}

	proposal.ID = proposalM.ID
	proposal.CreatedAt = proposalM.CreatedAt
	proposal.UpdatedAt = proposalM.UpdatedAt

	return nil
}

// FindByID retrieves a proposal by its unique ID.
func (repo *proposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DateProposal, error) {
	var proposalM model.DateProposalModel
	if err := repo.db.WithContext(ctx).First(&proposalM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, errors.Wrap(err, "failed to find proposal by id")
	}

	return toProposalDomain(&proposalM), nil
}

// FindByMatch retrieves the proposal attached to a match, if any.
func (repo *proposalRepository) FindByMatch(ctx context.Context, matchID uuid.UUID) (*entity.DateProposal, error) {
	var proposalM model.DateProposalModel
	if err := repo.db.WithContext(ctx).First(&proposalM, "match_id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, errors.Wrap(err, "failed to find proposal by match")
	}

	return toProposalDomain(&proposalM), nil
}

// SelectOption records the chosen option index and moves the proposal from
// proposed to selected in one conditional update, so two parties picking at
// once cannot both win.
func (repo *proposalRepository) SelectOption(ctx context.Context, id uuid.UUID, optionIndex int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DateProposalModel{}).
		Where("id = ? AND status = ?", id, string(entity.DateProposed)).
		Updates(map[string]any{
			"selected_index": optionIndex,
			"status":         string(entity.DateSelected),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to select date option")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProposalConflict
	}

	return nil
}

// UpdateStatus moves a proposal between statuses with a single conditional
// update, reporting ErrProposalConflict when the expected status is gone.
func (repo *proposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DateStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DateProposalModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update proposal status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProposalConflict
	}

	return nil
}

// toProposalDomain converts a GORM DateProposalModel to a domain entity.
func toProposalDomain(data *model.DateProposalModel) *entity.DateProposal {
	if data == nil {
		return nil
	}

	return &entity.DateProposal{
		ID:            data.ID,
		MatchID:       data.MatchID,
		ProposerID:    data.ProposerID,
		Options:       data.Options,
		SelectedIndex: data.SelectedIndex,
		Status:        entity.DateStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProposalDomain converts a domain entity to a GORM DateProposalModel.
func fromProposalDomain(data *entity.DateProposal) *model.DateProposalModel {
	if data == nil {
		return nil
	}

	return &model.DateProposalModel{
		ID:            data.ID,
		MatchID:       data.MatchID,
		ProposerID:    data.ProposerID,
		Options:       model.DateOptionsJSON(data.Options),
		SelectedIndex: data.SelectedIndex,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
