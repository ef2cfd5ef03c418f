package postgres

import (
	"context"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain's MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByReceiver retrieves a user's inbox, newest first.
func (repo *messageRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var models []model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find messages by receiver")
	}

	messages := make([]*entity.Message, 0, len(models))
	for i := range models {
		messages = append(messages, toMessageDomain(&models[i]))
	}

	return messages, nil
}

// FindByID retrieves a message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	if err := repo.db.WithContext(ctx).First(&messageM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM), nil
}

// MarkRead flags a message as read. The receiver scope lives in the query so
// another user's message cannot be touched.
func (repo *messageRepository) MarkRead(ctx context.Context, id, receiverID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// CountUnread returns the number of unread messages in a user's inbox.
func (repo *messageRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("receiver_id = ? AND read = false", receiverID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// toMessageDomain converts a GORM MessageModel to a domain entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Type:       entity.MessageType(data.Type),
		Content:    data.Content,
		Read:       data.Read,
		CreatedAt:  data.CreatedAt,
	}
}

// fromMessageDomain converts a domain entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Type:       string(data.Type),
		Content:    data.Content,
		Read:       data.Read,
		CreatedAt:  data.CreatedAt,
	}
}
