//go:generate mockgen -source=payment_gate.go -destination=../../tests/mock/usecase/mock_payment_gate.go -package=usecasemock

package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/infra"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

type GateConfig struct {
	Recipient    string
	Network      payment.Network
	Asset        string
	ChallengeTTL time.Duration
}

// PaymentGate issues challenges for unpaid calls and admits or rejects paid ones.
type PaymentGate interface {
	IssueChallenge(ctx context.Context, model string) (*payment.Requirements, error)
	Verify(ctx context.Context, model string, header string) (*payment.Info, error)
	Pricing() payment.PricingTable
}

type paymentGateImpl struct {
	cfg      GateConfig
	pricing  payment.PricingTable
	nonces   NonceStore
	ledger   LedgerVerifier
	receipts ReceiptStore
	stats    StatsCollector
	clock    clock.Clock
}

func NewPaymentGate(
	cfg GateConfig,
	pricing payment.PricingTable,
	nonces NonceStore,
	ledger LedgerVerifier,
	receipts ReceiptStore,
	stats StatsCollector,
	clock clock.Clock,
) PaymentGate {
	if cfg.Asset == "" {
		cfg.Asset = payment.AssetSTX
	}
	if cfg.ChallengeTTL <= 0 {
		cfg.ChallengeTTL = payment.ChallengeTTL
	}
	return &paymentGateImpl{
		cfg:      cfg,
		pricing:  pricing,
		nonces:   nonces,
		ledger:   ledger,
		receipts: receipts,
		stats:    stats,
		clock:    clock,
	}
}

func (g *paymentGateImpl) Pricing() payment.PricingTable {
	return g.pricing
}

func (g *paymentGateImpl) IssueChallenge(ctx context.Context, model string) (*payment.Requirements, error) {
	entry, err := g.pricing.GetPrice(model)
	if err != nil {
		return nil, err
	}

	nonce, err := g.nonces.Generate(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to generate nonce"), errs.ErrPaymentProcessing)
	}

	req := &payment.Requirements{
		Scheme:      payment.SchemeExact,
		Network:     g.cfg.Network.CAIP(),
		Asset:       g.cfg.Asset,
		PayTo:       g.cfg.Recipient,
		Amount:      strconv.FormatUint(entry.BasePrice, 10),
		Resource:    payment.ResourcePath(model),
		Nonce:       nonce,
		Description: "Payment for " + model + " AI model",
		ExpiresAt:   g.clock.Now().Add(g.cfg.ChallengeTTL).UnixMilli(),
	}

	g.stats.RecordChallenge(model)
	slog.Info("Payment required",
		slog.String("model", model),
		slog.Uint64("amount", entry.BasePrice),
		slog.String("asset", req.Asset),
		slog.String("network", req.Network))

	return req, nil
}

// Verify runs the admission checks in order and stops at the first failure.
// Policy failures come back as *payment.Rejection; store failures are marked
// ErrPaymentProcessing. Nothing is mutated unless every check passes.
func (g *paymentGateImpl) Verify(ctx context.Context, model string, header string) (*payment.Info, error) {
	info, err := g.verify(ctx, model, header)
	if err != nil {
		if r, ok := payment.AsRejection(err); ok {
			g.stats.RecordRejection(r.Code)
			slog.Warn("Payment rejected", slog.String("model", model), slog.String("code", string(r.Code)), slog.String("reason", r.Reason))
		}
		return nil, err
	}
	return info, nil
}

func (g *paymentGateImpl) verify(ctx context.Context, model string, header string) (*payment.Info, error) {
	entry, err := g.pricing.GetPrice(model)
	if err != nil {
		return nil, err
	}

	payload, err := payment.DecodePayload(header)
	if err != nil {
		return nil, payment.Reject(payment.RejectMalformed, payment.ReasonMalformed)
	}
	nonce := payload.PaymentRequirements.Nonce

	used, err := g.nonces.IsUsed(ctx, nonce)
	if err != nil {
		return nil, g.processingErr(err, "failed to read nonce state")
	}
	if used {
		return nil, payment.Reject(payment.RejectReplay, payment.ReasonReplay)
	}

	valid, err := g.nonces.IsValid(ctx, nonce)
	if err != nil {
		return nil, g.processingErr(err, "failed to read nonce age")
	}
	if !valid {
		return nil, payment.Reject(payment.RejectNonceExpired, payment.ReasonNonceExpired)
	}

	if payload.PaymentRequirements.Expired(g.clock.Now()) {
		return nil, payment.Reject(payment.RejectExpired, payment.ReasonExpired)
	}

	if payload.TxID == "" {
		return nil, payment.Reject(payment.RejectMissingTxID, payment.ReasonMissingTxID)
	}

	seen, err := g.receipts.Exists(ctx, payload.TxID)
	if err != nil {
		return nil, g.processingErr(err, "failed to look up receipt")
	}
	if seen {
		return nil, payment.Reject(payment.RejectTxReused, payment.ReasonTxReused)
	}

	result := g.ledger.VerifyTransaction(ctx, payload.TxID)
	if !result.Success {
		return nil, payment.LedgerRejection(result.Error)
	}

	if result.Amount < entry.BasePrice {
		return nil, payment.InsufficientPayment(entry.BasePrice, result.Amount)
	}

	if result.Recipient != g.cfg.Recipient {
		return nil, payment.Reject(payment.RejectInvalidRecipient, payment.ReasonInvalidRecipient)
	}

	won, err := g.nonces.Consume(ctx, nonce)
	if err != nil {
		return nil, g.processingErr(err, "failed to consume nonce")
	}
	if !won {
		return nil, payment.Reject(payment.RejectReplay, payment.ReasonReplay)
	}

	receipt := payment.Receipt{
		ID:          uuid.New(),
		TxID:        payload.TxID,
		Nonce:       nonce,
		Model:       model,
		Amount:      result.Amount,
		Sender:      result.Sender,
		Recipient:   result.Recipient,
		BlockHeight: result.BlockHeight,
		AdmittedAt:  g.clock.Now(),
	}
	if err := g.receipts.Record(ctx, receipt); err != nil {
		// Another admission bound this transaction between Exists and Record.
		// The nonce stays consumed: this proof's transaction can never admit
		// again, so there is no corrected resubmission to preserve it for.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, payment.Reject(payment.RejectTxReused, payment.ReasonTxReused)
		}
		return nil, g.processingErr(err, "failed to record receipt")
	}

	g.stats.RecordAdmission(model, result.Amount)
	slog.Info("Payment verified",
		slog.String("tx_id", payload.TxID),
		slog.Uint64("amount", result.Amount),
		slog.String("sender", result.Sender))

	return &payment.Info{
		TxID:      payload.TxID,
		Amount:    result.Amount,
		Sender:    result.Sender,
		Timestamp: result.Timestamp,
	}, nil
}

func (g *paymentGateImpl) processingErr(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrPaymentProcessing)
}
