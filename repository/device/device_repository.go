package device

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/model"
)

type SQL struct {
	conn *sqlx.DB
}

type DeviceRepository interface {
	Upsert(ctx context.Context, data *model.DeviceEntity) error
	Delete(ctx context.Context, userID uint64, deviceID string) error
	ListTokensByUserIDs(ctx context.Context, userIDs []uint64) ([]string, error)
	// DeleteTokens drops devices whose push token the provider no longer accepts.
	DeleteTokens(ctx context.Context, tokens []string) error
}

func NewDeviceRepository(conn *sqlx.DB) DeviceRepository {
	return &SQL{conn: conn}
}

const (
	upsertDeviceQuery = `INSERT INTO devices (user_id, device_id, fcm_token, created_at, updated_at)
VALUES (?, ?, ?, NOW(), NOW())
ON DUPLICATE KEY UPDATE user_id = VALUES(user_id), fcm_token = VALUES(fcm_token), updated_at = NOW()`
	deleteDeviceQuery = `DELETE FROM devices WHERE user_id = ? AND device_id = ?`
	listTokensQuery   = `SELECT DISTINCT fcm_token FROM devices WHERE user_id IN (?) AND fcm_token <> ''`
	deleteTokensQuery = `DELETE FROM devices WHERE fcm_token IN (?)`
)

// Upsert registers the device keyed by device_id, moving it to the new owner on re-login.
func (s *SQL) Upsert(ctx context.Context, data *model.DeviceEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertDeviceQuery, data.UserID, data.DeviceID, data.FCMToken)
	return err
}

func (s *SQL) Delete(ctx context.Context, userID uint64, deviceID string) error {
	_, err := s.conn.ExecContext(ctx, deleteDeviceQuery, userID, deviceID)
	return err
}

func (s *SQL) ListTokensByUserIDs(ctx context.Context, userIDs []uint64) ([]string, error) {
	tokens := make([]string, 0)
	if len(userIDs) == 0 {
		return tokens, nil
	}

	query, args, err := sqlx.In(listTokensQuery, userIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &tokens, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (s *SQL) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	query, args, err := sqlx.In(deleteTokensQuery, tokens)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, s.conn.Rebind(query), args...)
	return err
}
