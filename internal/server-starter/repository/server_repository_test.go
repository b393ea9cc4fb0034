package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	apperrors "GSLM_Microservice/internal/server-starter/errors"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return gormDB, mock
}

func TestGetProvisioningParams(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT "ebs_volume_id","instance_type","key_name" FROM "servers" WHERE id = $1 LIMIT $2`)

	tests := []struct {
		name           string
		mockSetup      func(mock sqlmock.Sqlmock)
		expectedParams ProvisioningParams
		expectedError  error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"ebs_volume_id", "instance_type", "key_name"}).
					AddRow("vol-0123", "m5.large", "gslm-key")
				mock.ExpectQuery(query).WithArgs(int64(7), 1).WillReturnRows(rows)
			},
			expectedParams: ProvisioningParams{
				EBSVolumeID:  "vol-0123",
				InstanceType: "m5.large",
				KeyName:      "gslm-key",
			},
		},
		{
			name: "ServerNotFound",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(int64(7), 1).
					WillReturnRows(sqlmock.NewRows([]string{"ebs_volume_id", "instance_type", "key_name"}))
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name: "DatabaseError",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(int64(7), 1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := setupTestDB(t)
			tt.mockSetup(mock)

			repo := NewServerRepository(gormDB)
			params, err := repo.GetProvisioningParams(context.Background(), 7)

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, apperrors.ErrServerNotFound) {
					assert.ErrorIs(t, err, apperrors.ErrServerNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedParams, params)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkStarting(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE "servers" SET "ec2_spot_request_id"=$1,"server_state"=$2 WHERE id = $3 AND server_state IN ($4,$5,$6)`)

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs("sir-123", lifecycle.ServerStarting, int64(7), "", lifecycle.ServerOffline, lifecycle.ServerStartRequested).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "StateMovedOn",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs("sir-123", lifecycle.ServerStarting, int64(7), "", lifecycle.ServerOffline, lifecycle.ServerStartRequested).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: lifecycle.ErrStateConflict,
		},
		{
			name: "DatabaseError",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs("sir-123", lifecycle.ServerStarting, int64(7), "", lifecycle.ServerOffline, lifecycle.ServerStartRequested).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := setupTestDB(t)
			tt.mockSetup(mock)

			repo := NewServerRepository(gormDB)
			err := repo.MarkStarting(context.Background(), 7, "sir-123")

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, lifecycle.ErrStateConflict) {
					assert.ErrorIs(t, err, lifecycle.ErrStateConflict)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
