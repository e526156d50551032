package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent     []published
	err      error
	closeErr error
	closed   bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return f.closeErr
}

type fakeConn struct {
	err    error
	closed bool
}

func (f *fakeConn) Close() error {
	f.closed = true
	return f.err
}

func TestAMQPPublishResumeScored(t *testing.T) {
	ch := &fakeChannel{}
	pub := &AMQP{ch: ch, exchange: "coach_events"}

	event := ResumeScored{Role: "backend", Selected: true, Score: 81.5, MissingSkills: []string{"fastapi"}}
	require.NoError(t, pub.Publish(context.Background(), RoutingResumeScored, event))

	require.Len(t, ch.sent, 1)
	require.Equal(t, "coach_events", ch.sent[0].exchange)
	require.Equal(t, RoutingResumeScored, ch.sent[0].key)
	require.Equal(t, "application/json", ch.sent[0].msg.ContentType)

	var got map[string]any
	require.NoError(t, json.Unmarshal(ch.sent[0].msg.Body, &got))
	require.Equal(t, "backend", got["role"])
	require.Equal(t, true, got["selected"])
	require.Equal(t, 81.5, got["score"])
	require.Equal(t, []any{"fastapi"}, got["missing_skills"])
}

func TestAMQPPublishErrors(t *testing.T) {
	boom := errors.New("channel closed")
	pub := &AMQP{ch: &fakeChannel{err: boom}, exchange: "coach_events"}
	require.ErrorIs(t, pub.Publish(context.Background(), RoutingAnswerEvaluated, AnswerEvaluated{}), boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := &fakeChannel{}
	pub = &AMQP{ch: ch, exchange: "coach_events"}
	require.ErrorIs(t, pub.Publish(ctx, RoutingAnswerEvaluated, AnswerEvaluated{}), context.Canceled)
	require.Empty(t, ch.sent)

	require.Error(t, pub.Publish(context.Background(), RoutingAnswerEvaluated, make(chan int)))
}

func TestAMQPClose(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, (&AMQP{ch: ch}).Close())
	require.True(t, ch.closed)

	chanErr := errors.New("channel already closed")
	connErr := errors.New("connection reset")

	testCases := []struct {
		name    string
		chErr   error
		connErr error
		want    error
	}{
		{name: "both succeed"},
		{name: "channel fails, connection still closed", chErr: chanErr, want: chanErr},
		{name: "connection fails", connErr: connErr, want: connErr},
		{name: "both fail returns channel error", chErr: chanErr, connErr: connErr, want: chanErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ch := &fakeChannel{closeErr: tc.chErr}
			conn := &fakeConn{err: tc.connErr}

			err := (&AMQP{ch: ch, conn: conn}).Close()
			require.True(t, ch.closed)
			require.True(t, conn.closed)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNoop(t *testing.T) {
	require.NoError(t, Noop{}.Publish(context.Background(), RoutingResumeScored, ResumeScored{}))
	require.NoError(t, Noop{}.Close())
}
