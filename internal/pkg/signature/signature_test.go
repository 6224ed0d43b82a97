package signature

import (
	"encoding/hex"
	"testing"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() models.TicketPayload {
	return models.TicketPayload{
		TicketID: "tkt-8f2a1c",
		UserID:   "usr-77",
		BusID:    "bus-12",
		PickupID: "stop-4",
		DropID:   "stop-9",
		Date:     "2025-11-20",
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)
	payload := validPayload()

	sig, err := signer.Sign(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	assert.True(t, signer.Verifier().Verify(payload, sig))
}

func TestSign_MissingField(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)

	tests := []struct {
		name   string
		mutate func(*models.TicketPayload)
	}{
		{"empty ticket id", func(p *models.TicketPayload) { p.TicketID = "" }},
		{"empty user id", func(p *models.TicketPayload) { p.UserID = "" }},
		{"empty bus id", func(p *models.TicketPayload) { p.BusID = "" }},
		{"empty pickup id", func(p *models.TicketPayload) { p.PickupID = "" }},
		{"empty drop id", func(p *models.TicketPayload) { p.DropID = "" }},
		{"empty date", func(p *models.TicketPayload) { p.Date = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			sig, err := signer.Sign(payload)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Nil(t, sig)
		})
	}
}

func TestSign_SeparatorInField(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	payload := validPayload()
	payload.BusID = "bus|12"

	_, err = NewSigner(key).Sign(payload)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestVerify_TamperedFields(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)
	verifier := signer.Verifier()

	payload := validPayload()
	sig, err := signer.Sign(payload)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*models.TicketPayload)
	}{
		{"ticket id changed", func(p *models.TicketPayload) { p.TicketID = "tkt-other" }},
		{"user id changed", func(p *models.TicketPayload) { p.UserID = "usr-78" }},
		{"bus id changed", func(p *models.TicketPayload) { p.BusID = "bus-13" }},
		{"pickup changed", func(p *models.TicketPayload) { p.PickupID = "stop-5" }},
		{"drop changed", func(p *models.TicketPayload) { p.DropID = "stop-10" }},
		{"date changed", func(p *models.TicketPayload) { p.Date = "2025-11-21" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := validPayload()
			tt.mutate(&tampered)
			assert.False(t, verifier.Verify(tampered, sig))
		})
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)
	verifier := signer.Verifier()

	payload := validPayload()
	sig, err := signer.Sign(payload)
	require.NoError(t, err)

	// Flip one bit in every byte position in turn
	for i := range sig {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		flipped[i] ^= 0x01
		assert.False(t, verifier.Verify(payload, flipped), "bit flip at byte %d accepted", i)
	}
}

func TestVerify_MalformedInput(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	verifier := NewSigner(key).Verifier()
	payload := validPayload()

	tests := []struct {
		name string
		sig  []byte
	}{
		{"nil signature", nil},
		{"empty signature", []byte{}},
		{"garbage bytes", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"truncated DER header", []byte{0x30}},
		{"oversized input", make([]byte, 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must report false, never panic
			assert.False(t, verifier.Verify(payload, tt.sig))
		})
	}

	t.Run("incomplete payload", func(t *testing.T) {
		signer := NewSigner(key)
		sig, err := signer.Sign(payload)
		require.NoError(t, err)

		broken := payload
		broken.UserID = ""
		assert.False(t, verifier.Verify(broken, sig))
	})
}

func TestVerify_UnsignedFieldsIrrelevant(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)
	verifier := signer.Verifier()

	// Two tickets differing only in unsigned fields carry the same
	// signed payload, so one signature verifies both.
	ticketA := models.Ticket{TicketPayload: validPayload(), Fare: 45000, SeatNumber: "12A"}
	ticketB := models.Ticket{TicketPayload: validPayload(), Fare: 52000, SeatNumber: "3C"}

	sig, err := signer.Sign(ticketA.TicketPayload)
	require.NoError(t, err)

	assert.True(t, verifier.Verify(ticketA.TicketPayload, sig))
	assert.True(t, verifier.Verify(ticketB.TicketPayload, sig))
}

func TestVerify_CrossParty(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)
	payload := validPayload()

	sig, err := signer.Sign(payload)
	require.NoError(t, err)

	// A verifier built only from the exported hex public key, as an
	// offline scanner would be, accepts the signature.
	verifier, err := NewVerifierFromHex(signer.PublicKeyHex())
	require.NoError(t, err)
	assert.True(t, verifier.Verify(payload, sig))

	// A verifier holding a different key rejects it
	otherKey, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.False(t, NewVerifier(&otherKey.PublicKey).Verify(payload, sig))
}

func TestVerify_WrongCanonicalization(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	signer := NewSigner(key)
	verifier := signer.Verifier()

	// Swapping two field values changes the canonical bytes even though
	// the field set is identical.
	payload := validPayload()
	sig, err := signer.Sign(payload)
	require.NoError(t, err)

	swapped := payload
	swapped.PickupID, swapped.DropID = payload.DropID, payload.PickupID
	assert.False(t, verifier.Verify(swapped, sig))
}

func TestCanonicalPayload(t *testing.T) {
	payload := validPayload()

	canonical, err := CanonicalPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "tkt-8f2a1c|usr-77|bus-12|stop-4|stop-9|2025-11-20", canonical)
}

func TestPrivateKeyHex_RoundTrip(t *testing.T) {
	key, err := GenerateKeyPair()
	require.NoError(t, err)

	loaded, err := ParsePrivateKeyHex(hex.EncodeToString(key.D.Bytes()))
	require.NoError(t, err)

	// A signature from the loaded key verifies against the original public key
	sig, err := NewSigner(loaded).Sign(validPayload())
	require.NoError(t, err)
	assert.True(t, NewVerifier(&key.PublicKey).Verify(validPayload(), sig))
}

func TestParsePrivateKeyHex_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not hex", "zz-not-hex"},
		{"zero scalar", "00"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrivateKeyHex(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestDecodePublicKey_Invalid(t *testing.T) {
	_, err := DecodePublicKey("04deadbeef")
	assert.Error(t, err)

	_, err = DecodePublicKey("not-hex")
	assert.Error(t, err)
}
