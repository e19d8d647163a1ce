package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)

	mock.ExpectPing()
	assert.NoError(t, hc.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_Ping_Failure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)

	mock.ExpectPing().WillReturnError(fmt.Errorf("no route to host"))
	assert.Error(t, hc.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_ServerVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)

	mock.ExpectQuery("SELECT version").
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("PostgreSQL 16.3"))

	version, err := hc.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 16.3", version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_ServerVersion_Failure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)

	mock.ExpectQuery("SELECT version").
		WillReturnError(fmt.Errorf("connection refused"))

	version, err := hc.ServerVersion(context.Background())
	assert.Error(t, err)
	assert.Empty(t, version)
	assert.NoError(t, mock.ExpectationsWereMet())
}
