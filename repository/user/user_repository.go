package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
	"github.com/muhammadheryan/heart2help/utils/geo"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetProfile(ctx context.Context, id uint64) (*model.UserProfileEntity, error)
	UpdatePhone(ctx context.Context, id uint64, phone string) error
	MarkPhoneVerified(ctx context.Context, id uint64, at time.Time) error
	MarkVerified(ctx context.Context, id uint64, at time.Time) error
	UpdateLocation(ctx context.Context, id uint64, lat, lng float64) error
	SetPersonaID(ctx context.Context, id uint64, personaID string) error
	ListNearbyActiveIDs(ctx context.Context, filter geo.Filter, excludeID uint64) ([]uint64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns = `id, first_name, last_name, email, password, status, profile_picture, phone_number,
is_phone_verified, phone_verified_at, is_verified, verified_at, dob, is_admin, type, latitude, longitude,
persona_id, push_notification, sms_notification, helps_push_notification, helps_sms_notification,
requests_push_notification, requests_sms_notification, created_at, updated_at`

	insertUserQuery = `INSERT INTO users (first_name, last_name, email, password, status, type, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`
	getUserBase = `SELECT ` + userColumns + ` FROM users WHERE true`

	getProfileQuery = `SELECT u.id, u.first_name, u.last_name, u.email, u.profile_picture, u.status, u.type, u.is_verified,
(SELECT COUNT(*) FROM post_helpers ph WHERE ph.helper_id = u.id) AS total_helps,
(SELECT COUNT(*) FROM user_feedbacks uf WHERE uf.user_id = u.id AND uf.is_positive = true) AS thumbs_up
FROM users u WHERE u.id = ?`

	updatePhoneQuery         = `UPDATE users SET phone_number = ?, is_phone_verified = false, phone_verified_at = NULL, updated_at = NOW() WHERE id = ?`
	markPhoneVerifiedQuery   = `UPDATE users SET is_phone_verified = true, phone_verified_at = ?, updated_at = NOW() WHERE id = ?`
	markVerifiedQuery        = `UPDATE users SET is_verified = true, verified_at = ?, updated_at = NOW() WHERE id = ?`
	updateLocationQuery      = `UPDATE users SET latitude = ?, longitude = ?, updated_at = NOW() WHERE id = ?`
	setPersonaIDQuery        = `UPDATE users SET persona_id = ?, updated_at = NOW() WHERE id = ?`
	nearbyActiveUserIDsQuery = `SELECT u.id FROM users u WHERE u.status = ? AND u.id <> ? AND u.push_notification = true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if data.Status == "" {
		data.Status = constant.UserStatusActive
	}
	if data.Type == "" {
		data.Type = constant.UserTypeHelp
	}

	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.FirstName, data.LastName, data.Email, data.PasswordHash, data.Status, data.Type)
	if err != nil {
		if repository.IsDuplicate(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone_number = ?"
		args = append(args, filter.Phone)
	}
	if filter.PersonaID != "" {
		query += " AND persona_id = ?"
		args = append(args, filter.PersonaID)
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetProfile(ctx context.Context, id uint64) (*model.UserProfileEntity, error) {
	var entity model.UserProfileEntity
	if err := s.conn.QueryRowxContext(ctx, getProfileQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdatePhone(ctx context.Context, id uint64, phone string) error {
	_, err := s.conn.ExecContext(ctx, updatePhoneQuery, phone, id)
	if repository.IsDuplicate(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (s *SQL) MarkPhoneVerified(ctx context.Context, id uint64, at time.Time) error {
	_, err := s.conn.ExecContext(ctx, markPhoneVerifiedQuery, at, id)
	return err
}

func (s *SQL) MarkVerified(ctx context.Context, id uint64, at time.Time) error {
	_, err := s.conn.ExecContext(ctx, markVerifiedQuery, at, id)
	return err
}

func (s *SQL) UpdateLocation(ctx context.Context, id uint64, lat, lng float64) error {
	_, err := s.conn.ExecContext(ctx, updateLocationQuery, lat, lng, id)
	return err
}

func (s *SQL) SetPersonaID(ctx context.Context, id uint64, personaID string) error {
	_, err := s.conn.ExecContext(ctx, setPersonaIDQuery, personaID, id)
	return err
}

// ListNearbyActiveIDs returns active users with push enabled inside the filter radius.
func (s *SQL) ListNearbyActiveIDs(ctx context.Context, filter geo.Filter, excludeID uint64) ([]uint64, error) {
	query := nearbyActiveUserIDsQuery
	args := []any{constant.UserStatusActive, excludeID}

	if where, whereArgs := filter.Where("u"); where != "" {
		query += " AND " + where
		args = append(args, whereArgs...)
	}

	ids := make([]uint64, 0)
	if err := s.conn.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}
