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

// matchRepository implements the domain's MatchRepository interface using GORM.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// Create persists a new pending match.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	matchM := fromMatchDomain(match)

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("match references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt
	match.UpdatedAt = matchM.UpdatedAt

	return nil
}

// FindByID retrieves a match by its unique ID.
func (repo *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel
	if err := repo.db.WithContext(ctx).First(&matchM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by id")
	}

	return toMatchDomain(&matchM), nil
}

// FindActiveByUser retrieves the non-terminal match a user is currently
// party to. Terminal statuses (rejected, expired) are skipped; completed
// flows keep their accepted match until the meetup is closed.
func (repo *matchRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel
	err := repo.db.WithContext(ctx).
		Where("(chooser_id = ? OR chosen_id = ?)", userID, userID).
		Where("status IN ?", []string{string(entity.MatchPending), string(entity.MatchAccepted)}).
		Order("created_at DESC").
		First(&matchM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find active match")
	}

	return toMatchDomain(&matchM), nil
}

// FindByUser retrieves all matches a user has been party to, newest first.
func (repo *matchRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	var models []model.MatchModel
	err := repo.db.WithContext(ctx).
		Where("chooser_id = ? OR chosen_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	matches := make([]*entity.Match, 0, len(models))
	for i := range models {
		matches = append(matches, toMatchDomain(&models[i]))
	}

	return matches, nil
}

// UpdateStatus moves a match between statuses with a single conditional
// update. Zero rows affected means the match left the expected status
// concurrently, reported as ErrMatchConflict.
func (repo *matchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.MatchStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update match status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMatchConflict
	}

	return nil
}

// toMatchDomain converts a GORM MatchModel to a domain entity.
func toMatchDomain(data *model.MatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	return &entity.Match{
		ID:        data.ID,
		ChooserID: data.ChooserID,
		ChosenID:  data.ChosenID,
		Status:    entity.MatchStatus(data.Status),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMatchDomain converts a domain entity to a GORM MatchModel.
func fromMatchDomain(data *entity.Match) *model.MatchModel {
	if data == nil {
		return nil
	}

	return &model.MatchModel{
		ID:        data.ID,
		ChooserID: data.ChooserID,
		ChosenID:  data.ChosenID,
		Status:    string(data.Status),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
