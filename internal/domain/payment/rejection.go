package payment

import (
	"fmt"

	"x402-gateway/internal/pkg/errs"
)

type RejectCode string

const (
	RejectMalformed        RejectCode = "malformed_proof"
	RejectReplay           RejectCode = "replay"
	RejectNonceExpired     RejectCode = "nonce_expired"
	RejectExpired          RejectCode = "requirements_expired"
	RejectMissingTxID      RejectCode = "missing_tx_id"
	RejectTxReused         RejectCode = "tx_reused"
	RejectLedger           RejectCode = "ledger"
	RejectInsufficient     RejectCode = "insufficient_amount"
	RejectInvalidRecipient RejectCode = "invalid_recipient"
)

// Reason strings are matched by clients and must stay stable.
const (
	ReasonMalformed        = "Invalid payment signature format"
	ReasonReplay           = "Nonce already used (replay attack prevention)"
	ReasonNonceExpired     = "Nonce expired"
	ReasonExpired          = "Payment requirements expired"
	ReasonMissingTxID      = "Transaction ID required"
	ReasonTxReused         = "Transaction already used"
	ReasonLedgerFallback   = "Transaction not found or pending"
	ReasonInvalidRecipient = "Invalid recipient address"
)

// Rejection is a client-fixable policy failure, rendered as 403 with Reason.
type Rejection struct {
	Code   RejectCode
	Reason string
}

func (r *Rejection) Error() string {
	return "payment rejected: " + r.Reason
}

func Reject(code RejectCode, reason string) *Rejection {
	return &Rejection{Code: code, Reason: reason}
}

func InsufficientPayment(expected, got uint64) *Rejection {
	return Reject(RejectInsufficient, fmt.Sprintf("Insufficient payment. Expected: %d, Got: %d", expected, got))
}

func LedgerRejection(reason string) *Rejection {
	if reason == "" {
		reason = ReasonLedgerFallback
	}
	return Reject(RejectLedger, reason)
}

func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errs.As(err, &r) {
		return r, true
	}
	return nil, false
}
