package repositories

import (
	"errors"

	"office_attendance_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type memberRepository struct {
	repository
}

//go:generate mockgen -source=member_repository.go -destination=mocks/mock_member_repository.go -package=mock_repositories
type MemberRepository interface {
	Upsert(request *models.Member) (*models.Member, error)
	Deactivate(telegramID int64) (bool, error)
	GetOneByTelegramID(telegramID int64) (*models.Member, error)
	GetMany() ([]*models.Member, error)
}

func NewMemberRepository(db *pg.DB) MemberRepository {
	return &memberRepository{
		repository: repository{
			db: db,
		},
	}
}

// Upsert registers a member or refreshes the stored profile, reactivating it.
func (r *memberRepository) Upsert(request *models.Member) (*models.Member, error) {
	request.Deactivated = false

	_, err := r.db.Model(request).
		OnConflict("(telegram_id) DO UPDATE").
		Set("telegram_nickname = EXCLUDED.telegram_nickname").
		Set("name = EXCLUDED.name").
		Set("is_bot = EXCLUDED.is_bot").
		Set("deactivated = EXCLUDED.deactivated").
		Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOneByTelegramID(request.TelegramID)
}

func (r *memberRepository) Deactivate(telegramID int64) (bool, error) {
	result, err := r.db.Model((*models.Member)(nil)).
		Set("deactivated = ?", true).
		Where("telegram_id = ?", telegramID).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *memberRepository) GetOneByTelegramID(telegramID int64) (*models.Member, error) {
	member := &models.Member{}

	err := r.db.Model(member).
		Where("telegram_id = ?", telegramID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) GetMany() ([]*models.Member, error) {
	members := make([]*models.Member, 0)

	err := r.db.Model(&members).
		OrderExpr("id ASC").
		Select()

	return members, err
}
