package websocket_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/snowseeker/internal/testutil"
	"github.com/dom/snowseeker/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wait = 2 * time.Second

func TestHub_StateSyncOnConnect(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()
	ts.Store.Add(ctx, "zermatt")
	ts.Store.Add(ctx, "aspen")

	client := testutil.NewWSClient(t, ts.WebSocketURL())
	sync := client.ExpectStateSync(wait)

	assert.NotEmpty(t, sync.ClientID)
	assert.Equal(t, []string{"aspen", "zermatt"}, sync.IDs)
	assert.Equal(t, 1, ts.Hub.ClientCount())
}

func TestHub_BroadcastsFavoriteChanges(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	first := testutil.NewWSClient(t, ts.WebSocketURL())
	second := testutil.NewWSClient(t, ts.WebSocketURL())
	first.ExpectStateSync(wait)
	second.ExpectStateSync(wait)

	ts.Store.Add(ctx, "davos")

	for _, c := range []*testutil.WSClient{first, second} {
		changed := c.ExpectFavoriteChanged(wait)
		assert.Equal(t, "davos", changed.ResortID)
		assert.True(t, changed.IsFavorite)
		assert.Equal(t, []string{"davos"}, changed.IDs)
	}

	ts.Store.Remove(ctx, "davos")
	changed := first.ExpectFavoriteChanged(wait)
	assert.False(t, changed.IsFavorite)
	assert.Empty(t, changed.IDs)
}

func TestHub_NoBroadcastForNoOp(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	client := testutil.NewWSClient(t, ts.WebSocketURL())
	client.ExpectStateSync(wait)

	ts.Store.Remove(ctx, "never-added")
	client.ExpectNoMessage(200 * time.Millisecond)
}

func TestClient_Messages(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := testutil.NewWSClient(t, ts.WebSocketURL())
	client.ExpectStateSync(wait)

	t.Run("ping", func(t *testing.T) {
		client.Send(websocket.MessageTypePing, nil)
		client.ExpectMessage(websocket.MessageTypePong, wait)
	})

	t.Run("sync state", func(t *testing.T) {
		ts.Store.Add(context.Background(), "niseko")
		client.ExpectFavoriteChanged(wait)

		client.Send(websocket.MessageTypeSyncState, nil)
		sync := client.ExpectStateSync(wait)
		assert.Equal(t, []string{"niseko"}, sync.IDs)
	})

	t.Run("unknown type", func(t *testing.T) {
		client.Send(websocket.MessageType("SHRUG"), nil)
		errPayload := client.ExpectError(wait)
		assert.Equal(t, "UNKNOWN_MESSAGE_TYPE", errPayload.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		client.SendRaw("not an object")
		errPayload := client.ExpectError(wait)
		assert.Equal(t, "INVALID_MESSAGE", errPayload.Code)
	})
}

func TestHub_StopDisconnectsClients(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := testutil.NewWSClient(t, ts.WebSocketURL())
	client.ExpectStateSync(wait)

	ts.Hub.Stop()
	assert.Equal(t, 0, ts.Hub.ClientCount())

	// Second stop is a no-op.
	require.NotPanics(t, ts.Hub.Stop)
}
