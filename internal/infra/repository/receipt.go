package repository

import (
	"context"
	"errors"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const receiptSchema = `
CREATE TABLE IF NOT EXISTS payment_receipts (
    id           UUID PRIMARY KEY,
    tx_id        TEXT        NOT NULL UNIQUE,
    nonce        TEXT        NOT NULL,
    model        TEXT        NOT NULL,
    amount       BIGINT      NOT NULL,
    sender       TEXT        NOT NULL,
    recipient    TEXT        NOT NULL,
    block_height BIGINT      NOT NULL,
    admitted_at  TIMESTAMPTZ NOT NULL
)`

const existsReceipt = `SELECT EXISTS (SELECT 1 FROM payment_receipts WHERE tx_id = $1)`

const insertReceipt = `
INSERT INTO payment_receipts (id, tx_id, nonce, model, amount, sender, recipient, block_height, admitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ReceiptRepository struct {
	db DBTX
}

func NewReceiptRepository(db DBTX) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

func (r *ReceiptRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, receiptSchema); err != nil {
		return infra.WrapRepoErr("failed to create payment_receipts", err)
	}
	return nil
}

func (r *ReceiptRepository) Exists(ctx context.Context, txID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsReceipt, txID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to look up receipt", err)
	}
	return exists, nil
}

func (r *ReceiptRepository) Record(ctx context.Context, receipt payment.Receipt) error {
	_, err := r.db.Exec(ctx, insertReceipt,
		receipt.ID,
		receipt.TxID,
		receipt.Nonce,
		receipt.Model,
		int64(receipt.Amount),
		receipt.Sender,
		receipt.Recipient,
		int64(receipt.BlockHeight),
		receipt.AdmittedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return infra.WrapRepoErr("transaction already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert receipt", err)
	}
	return nil
}
