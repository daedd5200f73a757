package relay

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialFrame(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var m Message
	require.NoError(t, conn.ReadJSON(&m))
	return m
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	assert.Eventually(t, func() bool { return h.Clients() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHubBroadcasts(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()
	defer h.Close()

	a := dialFrame(t, srv)
	b := dialFrame(t, srv)
	waitClients(t, h, 2)

	require.NoError(t, h.Post(NavigateTo("http://localhost:3000")))

	for _, conn := range []*websocket.Conn{a, b} {
		m := readMessage(t, conn)
		require.NotNil(t, m.Preview)
		require.NotNil(t, m.Preview.URL)
		assert.Equal(t, "http://localhost:3000", *m.Preview.URL)
	}
}

func TestHubReplaysLatestToNewFrame(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()
	defer h.Close()

	require.NoError(t, h.Post(NavigateTo("http://a")))
	require.NoError(t, h.Post(Message{Preview: &Payload{MediaScreen: map[string]string{"Phone": "375x667"}}}))
	require.NoError(t, h.Post(Message{Preview: &Payload{Refresh: true}}))

	conn := dialFrame(t, srv)
	m := readMessage(t, conn)
	require.NotNil(t, m.Preview)
	require.NotNil(t, m.Preview.URL)
	assert.Equal(t, "http://a", *m.Preview.URL)
	assert.Equal(t, map[string]string{"Phone": "375x667"}, m.Preview.MediaScreen)
	assert.False(t, m.Preview.Refresh, "one-shot commands are not replayed")
}

func TestHubDeliversInbound(t *testing.T) {
	got := make(chan any, 2)
	h := NewHub(func(msg any) { got <- msg })
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()
	defer h.Close()

	conn := dialFrame(t, srv)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"previewUrl":"http://a/b"}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`garbage`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"command":"alert","text":"hi"}`)))

	select {
	case msg := <-got:
		assert.Equal(t, State{PreviewURL: "http://a/b"}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no state message")
	}
	select {
	case msg := <-got:
		assert.Equal(t, Info{Command: "alert", Text: "hi"}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no info message")
	}
}

func TestHubClose(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	dialFrame(t, srv)
	waitClients(t, h, 1)

	require.NoError(t, h.Close())
	assert.Equal(t, 0, h.Clients())
	assert.ErrorIs(t, h.Post(NavigateTo("http://a")), ErrClosed)
	assert.NoError(t, h.Close())
}

func TestHubServesFramePage(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
