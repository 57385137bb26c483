//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/infra"
	"x402-gateway/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

type boolRow struct {
	value bool
	err   error
}

func (r boolRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.value
	return nil
}

func newReceipt() payment.Receipt {
	return payment.Receipt{
		ID:          uuid.New(),
		TxID:        "0xabc",
		Nonce:       "n1",
		Model:       "gpt4",
		Amount:      100000,
		Sender:      "ST2SENDER",
		Recipient:   "ST1RECIPIENT",
		BlockHeight: 42,
		AdmittedAt:  time.Now(),
	}
}

func TestReceiptRepository_Exists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		row        boolRow
		wantExists bool
		wantError  bool
	}{
		{name: "success - recorded", row: boolRow{value: true}, wantExists: true},
		{name: "success - not recorded", row: boolRow{value: false}, wantExists: false},
		{name: "error - query fails", row: boolRow{err: errors.New("connection reset")}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"0xabc"}).Return(tt.row)

			exists, err := repository.NewReceiptRepository(db).Exists(ctx, "0xabc")
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, exists)
			db.AssertExpectations(t)
		})
	}
}

func TestReceiptRepository_Record(t *testing.T) {
	ctx := context.Background()
	receipt := newReceipt()

	tests := []struct {
		name     string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success - inserted"},
		{name: "error - duplicate tx id", execErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "error - other failure", execErr: errors.New("disk full"), wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(args []any) bool {
				return len(args) == 9 && args[1] == "0xabc" && args[4] == int64(100000)
			})).Return(pgconn.NewCommandTag("INSERT 0 1"), tt.execErr)

			err := repository.NewReceiptRepository(db).Record(ctx, receipt)
			if tt.wantKind == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "expected kind [%v] but got (%v)", tt.wantKind, err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestReceiptRepository_EnsureSchema(t *testing.T) {
	ctx := context.Background()
	db := new(MockDBTX)
	db.On("Exec", ctx, mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "CREATE TABLE IF NOT EXISTS payment_receipts")
	}), []any(nil)).Return(pgconn.NewCommandTag("CREATE TABLE"), nil)

	require.NoError(t, repository.NewReceiptRepository(db).EnsureSchema(ctx))
	db.AssertExpectations(t)
}

func TestMemoryReceiptRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryReceiptRepository()
	receipt := newReceipt()

	exists, err := repo.Exists(ctx, receipt.TxID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Record(ctx, receipt))

	exists, err = repo.Exists(ctx, receipt.TxID)
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Record(ctx, receipt)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	got, ok := repo.Get(receipt.TxID)
	require.True(t, ok)
	assert.Equal(t, receipt.ID, got.ID)
}
