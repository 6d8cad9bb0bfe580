package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/pkg/platform/sentinel"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), sentinel.ErrNotFound)
	assert.ErrorIs(t, MapError(fmt.Errorf("wrapped: %w", &pq.Error{Code: UniqueViolation})), sentinel.ErrConflict)

	other := errors.New("connection reset")
	assert.Equal(t, other, MapError(other))
}

func TestLoadMigrations(t *testing.T) {
	ms, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].version, ms[i].version, "migrations must be strictly ordered")
	}
	assert.Equal(t, 1, ms[0].version)
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("0012_add_index.sql")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = parseVersion("noversion.sql")
	require.Error(t, err)
}
