package usecase

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/pkg/signature"
	"github.com/buslink/buslink/services/tickets/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T, repo *mocks.MockTicketRepo, gw *mocks.MockTicketGW) *TicketUC {
	t.Helper()
	uc, err := NewTicketUC(repo, gw, &models.Config{})
	require.NoError(t, err)
	return uc
}

func issueRequest() *models.TicketIssueRequest {
	return &models.TicketIssueRequest{
		UserID:     "usr-77",
		BusID:      "bus-12",
		PickupID:   "stop-4",
		DropID:     "stop-9",
		Date:       "2025-11-20",
		Fare:       45.0,
		SeatNumber: "12A",
	}
}

func TestIssueTicket_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTicketRepo(ctrl)
	mockGW := mocks.NewMockTicketGW(ctrl)
	uc := newTestUC(t, mockRepo, mockGW)

	mockRepo.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ticket *models.Ticket) error {
			assert.NotEmpty(t, ticket.TicketID)
			assert.Equal(t, "usr-77", ticket.UserID)
			assert.Equal(t, models.PaymentStatusPending, ticket.PaymentStatus)
			assert.NotEmpty(t, ticket.Signature)
			return nil
		})
	mockGW.EXPECT().PublishTicketIssued(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	ticket, err := uc.IssueTicket(context.Background(), issueRequest())

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.TicketID)
	assert.Equal(t, 45.0, ticket.Fare)
	assert.Equal(t, "12A", ticket.SeatNumber)

	// The issued signature must verify against the service public key
	sig, err := hex.DecodeString(ticket.Signature)
	require.NoError(t, err)
	verifier, err := signature.NewVerifierFromHex(uc.PublicKeyHex())
	require.NoError(t, err)
	assert.True(t, verifier.Verify(ticket.TicketPayload, sig))
}

func TestIssueTicket_MissingField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUC(t, mocks.NewMockTicketRepo(ctrl), mocks.NewMockTicketGW(ctrl))

	req := issueRequest()
	req.BusID = ""

	ticket, err := uc.IssueTicket(context.Background(), req)
	assert.ErrorIs(t, err, signature.ErrMissingField)
	assert.Nil(t, ticket)
}

func TestIssueTicket_PublishFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTicketRepo(ctrl)
	mockGW := mocks.NewMockTicketGW(ctrl)
	uc := newTestUC(t, mockRepo, mockGW)

	mockRepo.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTicketIssued(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// The ticket is issued even when the event bus is down
	ticket, err := uc.IssueTicket(context.Background(), issueRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.Signature)
}

func TestVerifyTicket_IssuedTicketIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTicketRepo(ctrl)
	mockGW := mocks.NewMockTicketGW(ctrl)
	uc := newTestUC(t, mockRepo, mockGW)

	mockRepo.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTicketIssued(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTicketVerified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TicketVerifiedEvent) error {
			assert.True(t, event.Valid)
			return nil
		})

	ticket, err := uc.IssueTicket(context.Background(), issueRequest())
	require.NoError(t, err)

	result, err := uc.VerifyTicket(context.Background(), &models.TicketVerifyRequest{
		Payload:   ticket.TicketPayload,
		Signature: ticket.Signature,
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, ticket.TicketID, result.TicketID)
}

func TestVerifyTicket_TamperedPayloadIsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTicketRepo(ctrl)
	mockGW := mocks.NewMockTicketGW(ctrl)
	uc := newTestUC(t, mockRepo, mockGW)

	mockRepo.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTicketIssued(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTicketVerified(gomock.Any(), gomock.Any()).Return(nil)

	ticket, err := uc.IssueTicket(context.Background(), issueRequest())
	require.NoError(t, err)

	tampered := ticket.TicketPayload
	tampered.BusID = "bus-13"

	result, err := uc.VerifyTicket(context.Background(), &models.TicketVerifyRequest{
		Payload:   tampered,
		Signature: ticket.Signature,
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestVerifyTicket_MalformedSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTicketGW(ctrl)
	uc := newTestUC(t, mocks.NewMockTicketRepo(ctrl), mockGW)

	tests := []struct {
		name      string
		signature string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"garbage hex", "deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGW.EXPECT().PublishTicketVerified(gomock.Any(), gomock.Any()).Return(nil)

			result, err := uc.VerifyTicket(context.Background(), &models.TicketVerifyRequest{
				Payload: models.TicketPayload{
					TicketID: "tkt-1",
					UserID:   "usr-77",
					BusID:    "bus-12",
					PickupID: "stop-4",
					DropID:   "stop-9",
					Date:     "2025-11-20",
				},
				Signature: tt.signature,
			})
			require.NoError(t, err)
			assert.False(t, result.Valid)
		})
	}
}

func TestGetTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTicketRepo(ctrl)
	uc := newTestUC(t, mockRepo, mocks.NewMockTicketGW(ctrl))

	mockRepo.EXPECT().GetTicketByID(gomock.Any(), "tkt-1").Return(&models.Ticket{
		TicketPayload: models.TicketPayload{TicketID: "tkt-1"},
	}, nil)

	ticket, err := uc.GetTicket(context.Background(), "tkt-1")
	require.NoError(t, err)
	assert.Equal(t, "tkt-1", ticket.TicketID)

	_, err = uc.GetTicket(context.Background(), "")
	assert.Error(t, err)
}

func TestNewTicketUC_ConfiguredKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key, err := signature.GenerateKeyPair()
	require.NoError(t, err)

	cfg := &models.Config{}
	cfg.Signer.PrivateKeyHex = hex.EncodeToString(key.D.Bytes())

	uc, err := NewTicketUC(mocks.NewMockTicketRepo(ctrl), mocks.NewMockTicketGW(ctrl), cfg)
	require.NoError(t, err)
	assert.Equal(t, signature.EncodePublicKey(&key.PublicKey), uc.PublicKeyHex())
}

func TestNewTicketUC_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{}
	cfg.Signer.PrivateKeyHex = "not-hex"

	uc, err := NewTicketUC(mocks.NewMockTicketRepo(ctrl), mocks.NewMockTicketGW(ctrl), cfg)
	assert.Error(t, err)
	assert.Nil(t, uc)
}
