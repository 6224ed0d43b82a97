// Package signature implements the ticket signing scheme: a DER-encoded
// ECDSA P-256 signature over a canonical byte representation of the six
// signed ticket fields. Verification needs only the public key, so
// driver devices can validate tickets with no network access.
package signature

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/buslink/buslink/internal/pkg/models"
)

// Separator joins the canonical payload fields. It must never appear
// in a field value; the signer rejects payloads containing it because
// a field with an embedded separator would canonicalize ambiguously.
const Separator = "|"

var (
	// ErrMissingField is returned when a required payload field is empty
	ErrMissingField = errors.New("ticket payload field missing")

	// ErrInvalidField is returned when a payload field contains the separator
	ErrInvalidField = errors.New("ticket payload field contains reserved separator")
)

// GenerateKeyPair produces a fresh P-256 key pair from a
// cryptographically secure random source.
func GenerateKeyPair() (*ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return key, nil
}

// ParsePrivateKeyHex loads a P-256 private key from its hex-encoded
// scalar, the format used when loading key material from a secret store.
func ParsePrivateKeyHex(s string) (*ecdsa.PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid private key hex: %w", err)
	}

	curve := elliptic.P256()
	d := new(big.Int).SetBytes(b)
	if d.Sign() <= 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, errors.New("private key scalar out of range")
	}

	key := &ecdsa.PrivateKey{D: d}
	key.PublicKey.Curve = curve
	key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(d.Bytes())
	return key, nil
}

// EncodePublicKey returns the hex encoding of the uncompressed public
// point, the transportable form embedded in offline verifier builds.
func EncodePublicKey(pub *ecdsa.PublicKey) string {
	return hex.EncodeToString(elliptic.Marshal(pub.Curve, pub.X, pub.Y))
}

// DecodePublicKey parses a hex-encoded uncompressed P-256 public point.
func DecodePublicKey(s string) (*ecdsa.PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid public key hex: %w", err)
	}

	curve := elliptic.P256()
	x, y := elliptic.Unmarshal(curve, b)
	if x == nil {
		return nil, errors.New("invalid public key point")
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

// CanonicalPayload builds the byte-exact string the signature covers:
// the six signed fields, in fixed order, joined by the separator.
// Signer and verifier must agree on this exactly; any divergence
// silently invalidates every previously issued ticket.
func CanonicalPayload(p models.TicketPayload) (string, error) {
	fields := []string{
		p.TicketID,
		p.UserID,
		p.BusID,
		p.PickupID,
		p.DropID,
		p.Date,
	}

	for _, f := range fields {
		if f == "" {
			return "", ErrMissingField
		}
		if strings.Contains(f, Separator) {
			return "", ErrInvalidField
		}
	}

	return strings.Join(fields, Separator), nil
}

// Signer signs ticket payloads with the private key. Sign is safe for
// concurrent use; the key is read-only after construction.
type Signer struct {
	key *ecdsa.PrivateKey
}

// NewSigner creates a signer around an existing private key
func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{key: key}
}

// Sign produces a DER-encoded ECDSA signature over the canonical
// payload bytes. It fails on an incomplete payload before any
// signature is produced; partial data is never signed.
func (s *Signer) Sign(p models.TicketPayload) ([]byte, error) {
	payload, err := CanonicalPayload(p)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256([]byte(payload))
	sig, err := ecdsa.SignASN1(rand.Reader, s.key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign ticket payload: %w", err)
	}
	return sig, nil
}

// PublicKeyHex returns the signer's public key in transportable form
func (s *Signer) PublicKeyHex() string {
	return EncodePublicKey(&s.key.PublicKey)
}

// Verifier returns a verifier bound to the signer's public key
func (s *Signer) Verifier() *Verifier {
	return NewVerifier(&s.key.PublicKey)
}

// Verifier checks ticket signatures using only the public key. It has
// no dependency on the private key or any live service, so it runs on
// disconnected scanner devices.
type Verifier struct {
	pub *ecdsa.PublicKey
}

// NewVerifier creates a verifier around a public key
func NewVerifier(pub *ecdsa.PublicKey) *Verifier {
	return &Verifier{pub: pub}
}

// NewVerifierFromHex creates a verifier from the hex-encoded public key
// as distributed to offline scanners.
func NewVerifierFromHex(s string) (*Verifier, error) {
	pub, err := DecodePublicKey(s)
	if err != nil {
		return nil, err
	}
	return NewVerifier(pub), nil
}

// Verify reports whether sig is a valid signature over the payload.
// Malformed signature bytes, truncated input, or an incomplete payload
// all report false; corrupted input from scanning devices must never
// crash the verifier.
func (v *Verifier) Verify(p models.TicketPayload, sig []byte) bool {
	payload, err := CanonicalPayload(p)
	if err != nil {
		return false
	}

	digest := sha256.Sum256([]byte(payload))
	return ecdsa.VerifyASN1(v.pub, digest[:], sig)
}

// PublicKeyHex returns the verifier's public key in transportable form
func (v *Verifier) PublicKeyHex() string {
	return EncodePublicKey(v.pub)
}
