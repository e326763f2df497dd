package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchema_PendingReportKeys(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/000001_init.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "pending_reporter BIGINT UNSIGNED AS (IF(status = 'pending', created_by, NULL)) STORED")
	assert.Contains(t, schema, "UNIQUE KEY uq_user_reports_pending (pending_reporter, user_id)")
	assert.Contains(t, schema, "UNIQUE KEY uq_post_reports_pending (pending_reporter, post_id)")
}
