package repository

import (
	"context"
	"sync"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/infra"
)

// MemoryReceiptRepository is used when DATABASE_URL is not set.
type MemoryReceiptRepository struct {
	mu       sync.Mutex
	receipts map[string]payment.Receipt
}

func NewMemoryReceiptRepository() *MemoryReceiptRepository {
	return &MemoryReceiptRepository{receipts: make(map[string]payment.Receipt)}
}

func (r *MemoryReceiptRepository) Exists(_ context.Context, txID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.receipts[txID]
	return ok, nil
}

func (r *MemoryReceiptRepository) Record(_ context.Context, receipt payment.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.receipts[receipt.TxID]; ok {
		return infra.WrapRepoErr("transaction already recorded", nil, infra.KindDuplicateKey)
	}
	r.receipts[receipt.TxID] = receipt
	return nil
}

func (r *MemoryReceiptRepository) Get(txID string) (payment.Receipt, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.receipts[txID]
	return rec, ok
}
