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

// attendanceRepository implements the domain's AttendanceRepository interface using GORM.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create persists a new attendance record carrying a confirmation code.
func (repo *attendanceRepository) Create(ctx context.Context, attendance *entity.Attendance) error {
	attendanceM := fromAttendanceDomain(attendance)

	if err := repo.db.WithContext(ctx).Create(attendanceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("attendance already started for this date")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attendance record")
	}

	attendance.ID = attendanceM.ID
	attendance.CreatedAt = attendanceM.CreatedAt

	return nil
}

// FindByDateAndUser retrieves a single party's attendance record for a date.
func (repo *attendanceRepository) FindByDateAndUser(ctx context.Context, dateID, userID uuid.UUID) (*entity.Attendance, error) {
	var attendanceM model.AttendanceModel
	err := repo.db.WithContext(ctx).
		First(&attendanceM, "date_id = ? AND user_id = ?", dateID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find attendance record")
	}

	return toAttendanceDomain(&attendanceM), nil
}

// FindByDate retrieves every attendance record written for a date.
func (repo *attendanceRepository) FindByDate(ctx context.Context, dateID uuid.UUID) ([]*entity.Attendance, error) {
	var models []model.AttendanceModel
	err := repo.db.WithContext(ctx).
		Where("date_id = ?", dateID).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find attendance by date")
	}

	records := make([]*entity.Attendance, 0, len(models))
	for i := range models {
		records = append(records, toAttendanceDomain(&models[i]))
	}

	return records, nil
}

// CodeMatches reports whether any attendance record for the date carries the
// given confirmation code. Either party's code verifies the meeting.
func (repo *attendanceRepository) CodeMatches(ctx context.Context, dateID uuid.UUID, code string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("date_id = ? AND confirmation_code = ?", dateID, code).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check confirmation code")
	}

	return count > 0, nil
}

// MarkConfirmed sets the confirmed flag and timestamp on a record.
func (repo *attendanceRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"confirmed":    true,
			"confirmed_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark attendance confirmed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

// toAttendanceDomain converts a GORM AttendanceModel to a domain entity.
func toAttendanceDomain(data *model.AttendanceModel) *entity.Attendance {
	if data == nil {
		return nil
	}

	return &entity.Attendance{
		ID:               data.ID,
		DateID:           data.DateID,
		UserID:           data.UserID,
		ConfirmationCode: data.ConfirmationCode,
		Confirmed:        data.Confirmed,
		ConfirmedAt:      data.ConfirmedAt,
		CreatedAt:        data.CreatedAt,
	}
}

// fromAttendanceDomain converts a domain entity to a GORM AttendanceModel.
func fromAttendanceDomain(data *entity.Attendance) *model.AttendanceModel {
	if data == nil {
		return nil
	}

	return &model.AttendanceModel{
		ID:               data.ID,
		DateID:           data.DateID,
		UserID:           data.UserID,
		ConfirmationCode: data.ConfirmationCode,
		Confirmed:        data.Confirmed,
		ConfirmedAt:      data.ConfirmedAt,
		CreatedAt:        data.CreatedAt,
	}
}
