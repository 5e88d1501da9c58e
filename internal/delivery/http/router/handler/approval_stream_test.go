package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPairingHandler_StreamApproval(t *testing.T) {
	fx := createTestPairingHandler(t)
	id := uuid.New()

	fx.pairingUC.EXPECT().GetApproval(mock.Anything, id).Return(entity.ApprovalUnset, nil)
	fx.pairingUC.EXPECT().WatchApproval(mock.Anything, id, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID, onChange func(entity.ApprovalState)) error {
			onChange(entity.ApprovalUnset)
			onChange(entity.ApprovalApproved)
			<-ctx.Done()

			return nil
		})

	e := newTestEcho()
	e.GET("/v1/families/:id/approval/stream", fx.handler.StreamApproval)
	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/families/" + id.String() + "/approval/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var first, second ApprovalMessage
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, entity.ApprovalUnset, first.ApprovalState)
	assert.Equal(t, ApprovalMessage{Type: "approval", ApprovalState: entity.ApprovalApproved}, second)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestPairingHandler_StreamApproval_UnknownFamily(t *testing.T) {
	fx := createTestPairingHandler(t)
	id := uuid.New()

	fx.pairingUC.EXPECT().GetApproval(mock.Anything, id).Return("", domainerrors.ErrFamilyNotFound)

	e := newTestEcho()
	e.GET("/v1/families/:id/approval/stream", fx.handler.StreamApproval)
	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/families/" + id.String() + "/approval/stream"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
