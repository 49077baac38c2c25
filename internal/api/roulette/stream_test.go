package roulette

import (
	"net/http"
	"strings"
	"testing"
	"time"

	dto "roulette_bot/internal/api/dto/roulette"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialStream(t *testing.T, srv *testServer, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/roulette/ws?access_token=" + accessToken(t, sessionID)
	conn, res, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = res.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) dto.StreamMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg dto.StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func sendEvent(t *testing.T, conn *websocket.Conn, raw string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(raw)))
}

func expectDirective(t *testing.T, conn *websocket.Conn, stage string) *dto.DirectiveResponse {
	t.Helper()
	msg := readMessage(t, conn)
	require.Equal(t, dto.MessageDirective, msg.Type)
	require.NotNil(t, msg.Directive)
	assert.Equal(t, stage, msg.Directive.NextStage)
	return msg.Directive
}

func TestStreamRoundWithAnimation(t *testing.T) {
	srv := newTestServer(t, 19, NewSpinner(quartz.NewReal(), fixedSource{n: 5}, 3, 0))
	conn := dialStream(t, srv, "ws-1")

	expectDirective(t, conn, "idle")

	sendEvent(t, conn, `{"kind":"start"}`)
	expectDirective(t, conn, "choosing_bet")
	sendEvent(t, conn, `{"kind":"stake","stake":100}`)
	expectDirective(t, conn, "choosing_target")
	sendEvent(t, conn, `{"kind":"target","target":{"kind":"color","color":"red"}}`)
	expectDirective(t, conn, "ready_to_spin")

	sendEvent(t, conn, `{"kind":"spin"}`)
	for i := 0; i <= 3; i++ {
		msg := readMessage(t, conn)
		require.Equal(t, dto.MessageFrame, msg.Type)
		require.NotNil(t, msg.Frame)
		assert.Equal(t, i, msg.Frame.Index)
	}

	d := expectDirective(t, conn, "idle")
	require.NotNil(t, d.Outcome)
	assert.Equal(t, 19, d.Outcome.Number)
	assert.Equal(t, "red", d.Outcome.Color)
	assert.Equal(t, 200, d.Outcome.Payout)
}

func TestStreamOutOfOrderSpinIsNotAnimated(t *testing.T) {
	srv := newTestServer(t, 0, NewSpinner(quartz.NewReal(), fixedSource{}, 3, 0))
	conn := dialStream(t, srv, "ws-2")

	expectDirective(t, conn, "idle")
	sendEvent(t, conn, `{"kind":"spin"}`)

	msg := readMessage(t, conn)
	require.Equal(t, dto.MessageError, msg.Type)
	require.NotNil(t, msg.Error)
	assert.Equal(t, codeOutOfOrder, msg.Error.Code)
	require.NotNil(t, msg.Error.Prompt)
	assert.Equal(t, "idle", msg.Error.Prompt.NextStage)
}

func TestStreamMalformedMessage(t *testing.T) {
	srv := newTestServer(t, 0, nil)
	conn := dialStream(t, srv, "ws-3")

	expectDirective(t, conn, "idle")
	sendEvent(t, conn, `not json`)

	msg := readMessage(t, conn)
	require.Equal(t, dto.MessageError, msg.Type)
	assert.Equal(t, codeMalformed, msg.Error.Code)

	// Соединение продолжает работать
	sendEvent(t, conn, `{"kind":"start"}`)
	expectDirective(t, conn, "choosing_bet")
}

func TestStreamCancelDuringAnimation(t *testing.T) {
	// Мок-часы не двигаются: анимация застревает после первого кадра
	srv := newTestServer(t, 7, NewSpinner(quartz.NewMock(t), fixedSource{}, 3, time.Hour))
	conn := dialStream(t, srv, "ws-4")

	expectDirective(t, conn, "idle")
	sendEvent(t, conn, `{"kind":"start"}`)
	expectDirective(t, conn, "choosing_bet")
	sendEvent(t, conn, `{"kind":"stake","stake":10}`)
	expectDirective(t, conn, "choosing_target")
	sendEvent(t, conn, `{"kind":"target","target":{"kind":"number","number":7}}`)
	expectDirective(t, conn, "ready_to_spin")

	sendEvent(t, conn, `{"kind":"spin"}`)
	msg := readMessage(t, conn)
	require.Equal(t, dto.MessageFrame, msg.Type)
	assert.Equal(t, 0, msg.Frame.Index)

	sendEvent(t, conn, `{"kind":"cancel"}`)
	d := expectDirective(t, conn, "idle")
	assert.Nil(t, d.Outcome)

	sess, err := srv.serv.Session(t.Context(), "ws-4")
	require.NoError(t, err)
	assert.Equal(t, "idle", sess.Stage.String())
	assert.Zero(t, sess.Stake)
	assert.Zero(t, srv.serv.Stats().TotalSpins)
}

func TestStreamUnauthorized(t *testing.T) {
	srv := newTestServer(t, 0, nil)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/roulette/ws"

	_, res, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestStreamRejectsEventsDuringAnimation(t *testing.T) {
	srv := newTestServer(t, 7, NewSpinner(quartz.NewMock(t), fixedSource{}, 3, time.Hour))
	conn := dialStream(t, srv, "ws-5")

	expectDirective(t, conn, "idle")
	sendEvent(t, conn, `{"kind":"start"}`)
	expectDirective(t, conn, "choosing_bet")
	sendEvent(t, conn, `{"kind":"stake","stake":10}`)
	expectDirective(t, conn, "choosing_target")
	sendEvent(t, conn, `{"kind":"target","target":{"kind":"color","color":"black"}}`)
	expectDirective(t, conn, "ready_to_spin")

	sendEvent(t, conn, `{"kind":"spin"}`)
	msg := readMessage(t, conn)
	require.Equal(t, dto.MessageFrame, msg.Type)

	sendEvent(t, conn, `{"kind":"start"}`)
	msg = readMessage(t, conn)
	require.Equal(t, dto.MessageError, msg.Type)
	require.NotNil(t, msg.Error)
	assert.Equal(t, codeOutOfOrder, msg.Error.Code)

	sendEvent(t, conn, `{"kind":`)
	msg = readMessage(t, conn)
	require.Equal(t, dto.MessageError, msg.Type)
	assert.Equal(t, codeMalformed, msg.Error.Code)

	// Отклонённые события не трогают сессию, анимация ждёт дальше
	sess, err := srv.serv.Session(t.Context(), "ws-5")
	require.NoError(t, err)
	assert.Equal(t, "ready_to_spin", sess.Stage.String())

	sendEvent(t, conn, `{"kind":"cancel"}`)
	expectDirective(t, conn, "idle")
}
