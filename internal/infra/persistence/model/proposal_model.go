package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cafemeetup/internal/domain/entity"
)

// DateOptionsJSON stores a proposal's option list in a single jsonb column.
// Options are immutable once proposed, so no relational breakdown is needed.
type DateOptionsJSON []entity.DateOption

// Value implements driver.Valuer.
func (o DateOptionsJSON) Value() (driver.Value, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal date options")
	}

	return data, nil
}

// Scan implements sql.Scanner.
func (o *DateOptionsJSON) Scan(value any) error {
	if value == nil {
		*o = nil

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported date options column type %T", value)
	}

	return errors.Wrap(json.Unmarshal(data, o), "failed to unmarshal date options")
}

// DateProposalModel mirrors the 'date_proposals' table. A match carries at
// most one proposal, enforced by the unique index on match_id.
type DateProposalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MatchID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ProposerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Options       DateOptionsJSON `gorm:"type:jsonb;not null"`
	SelectedIndex *int
	Status        string `gorm:"type:varchar(20);not null;default:'proposed';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DateProposalModel) TableName() string {
	return "date_proposals"
}
