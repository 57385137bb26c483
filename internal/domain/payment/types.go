package payment

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SchemeExact = "exact"
	AssetSTX    = "STX"

	// HeaderName carries base64(JSON(Payload)) on a paid request.
	HeaderName = "payment-signature"

	// ChallengeTTL bounds both the nonce lifetime and the requirements expiry.
	ChallengeTTL = 300 * time.Second
)

var ErrMalformedPayload = errors.New("malformed payment payload")

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

func ParseNetwork(s string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(s))) {
	case NetworkMainnet:
		return NetworkMainnet, nil
	case NetworkTestnet:
		return NetworkTestnet, nil
	default:
		return "", errors.New("invalid network: " + s)
	}
}

// CAIP returns the chain identifier placed in challenges, e.g. "stacks:testnet".
func (n Network) CAIP() string {
	return "stacks:" + string(n)
}

// Requirements is the challenge handed to an unpaid caller. Amount is a decimal
// string in microSTX so that clients never round it through a float.
type Requirements struct {
	Scheme      string `json:"scheme"`
	Network     string `json:"network"`
	Asset       string `json:"asset"`
	PayTo       string `json:"payTo"`
	Amount      string `json:"amount"`
	Resource    string `json:"resource"`
	Nonce       string `json:"nonce"`
	Description string `json:"description,omitempty"`
	ExpiresAt   int64  `json:"expiresAt,omitempty"` // unix millis
}

// Expired reports whether the wall clock has passed ExpiresAt. A zero ExpiresAt never expires.
func (r Requirements) Expired(now time.Time) bool {
	if r.ExpiresAt == 0 {
		return false
	}
	return now.UnixMilli() > r.ExpiresAt
}

// Payload is the client proof. Signature and PublicKey are carried through
// untouched; the proof is authenticated by the ledger lookup on TxID.
type Payload struct {
	PaymentRequirements Requirements `json:"paymentRequirements"`
	Signature           string       `json:"signature"`
	PublicKey           string       `json:"publicKey"`
	TxID                string       `json:"txId,omitempty"`
}

func DecodePayload(header string) (*Payload, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, ErrMalformedPayload
	}

	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(header)
		if err != nil {
			return nil, ErrMalformedPayload
		}
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, ErrMalformedPayload
	}
	if p.PaymentRequirements.Nonce == "" {
		return nil, ErrMalformedPayload
	}
	return &p, nil
}

func (p Payload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Info is attached to an admitted request.
type Info struct {
	TxID      string `json:"txId"`
	Amount    uint64 `json:"amount"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

type VerificationResult struct {
	Success     bool
	Error       string
	Amount      uint64
	Recipient   string
	Sender      string
	Timestamp   int64
	BlockHeight uint64
}

type Receipt struct {
	ID          uuid.UUID
	TxID        string
	Nonce       string
	Model       string
	Amount      uint64
	Sender      string
	Recipient   string
	BlockHeight uint64
	AdmittedAt  time.Time
}
