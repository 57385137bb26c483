//go:build unit || e2e

package builder

import (
	"time"

	"x402-gateway/internal/domain/payment"
)

const (
	DefaultRecipient = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
	DefaultSender    = "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"
	DefaultTxID      = "0x8f3a2b1c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8"
)

type PaymentBuilder struct {
	Model     string
	Amount    string
	PayTo     string
	Nonce     string
	Network   payment.Network
	ExpiresAt time.Time
	TxID      string
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		Model:     "gpt4",
		Amount:    "100000",
		PayTo:     DefaultRecipient,
		Nonce:     "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
		Network:   payment.NetworkTestnet,
		ExpiresAt: time.Now().Add(payment.ChallengeTTL),
		TxID:      DefaultTxID,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) WithNonce(nonce string) *PaymentBuilder {
	b.Nonce = nonce
	return b
}

func (b *PaymentBuilder) WithTxID(txID string) *PaymentBuilder {
	b.TxID = txID
	return b
}

// FromRequirements copies a challenge issued by the gate.
func (b *PaymentBuilder) FromRequirements(req payment.Requirements) *PaymentBuilder {
	b.Amount = req.Amount
	b.PayTo = req.PayTo
	b.Nonce = req.Nonce
	b.ExpiresAt = time.UnixMilli(req.ExpiresAt)
	return b
}

func (b *PaymentBuilder) BuildRequirements() payment.Requirements {
	return payment.Requirements{
		Scheme:    payment.SchemeExact,
		Network:   b.Network.CAIP(),
		Asset:     payment.AssetSTX,
		PayTo:     b.PayTo,
		Amount:    b.Amount,
		Resource:  payment.ResourcePath(b.Model),
		Nonce:     b.Nonce,
		ExpiresAt: b.ExpiresAt.UnixMilli(),
	}
}

func (b *PaymentBuilder) BuildPayload() payment.Payload {
	return payment.Payload{
		PaymentRequirements: b.BuildRequirements(),
		TxID:                b.TxID,
	}
}

// BuildHeader returns the encoded payment-signature header value.
func (b *PaymentBuilder) BuildHeader() string {
	header, err := b.BuildPayload().Encode()
	if err != nil {
		panic(err)
	}
	return header
}

func (b *PaymentBuilder) BuildVerification(amount uint64) payment.VerificationResult {
	return payment.VerificationResult{
		Success:     true,
		Amount:      amount,
		Recipient:   b.PayTo,
		Sender:      DefaultSender,
		Timestamp:   time.Now().Unix(),
		BlockHeight: 150000,
	}
}
