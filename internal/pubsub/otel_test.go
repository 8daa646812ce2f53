package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracingBridge(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	bridge := NewWatermillBridge(tp.Tracer("test"))
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "support.message.posted", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:   "support.message.posted",
		UserID:  "board-1",
		Payload: []byte(`{"message_id":3}`),
	}))

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}

	require.Eventually(t, func() bool {
		return len(recorder.Ended()) >= 2
	}, time.Second, 10*time.Millisecond)

	names := make([]string, 0, len(recorder.Ended()))
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Contains(t, names, "pubsub.publish.support.message.posted")
	assert.Contains(t, names, "pubsub.process.support.message.posted")
}

func TestTracingBridge_TypedEventAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	bridge := NewWatermillBridge(tp.Tracer("test"))
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type posted struct {
		MessageID int `json:"message_id"`
	}
	event := NewEvent[posted]("support.message.posted", "A visitor posted to their board")

	received := make(chan posted, 1)
	require.NoError(t, Subscribe(ctx, bridge, event, func(ctx context.Context, boardID string, p posted) error {
		received <- p
		return nil
	}))
	require.NoError(t, Publish(ctx, bridge, event, "board-7", posted{MessageID: 3}))

	select {
	case p := <-received:
		assert.Equal(t, 3, p.MessageID)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}

	require.Eventually(t, func() bool {
		return len(recorder.Ended()) >= 2
	}, time.Second, 10*time.Millisecond)

	for _, span := range recorder.Ended() {
		attrs := make(map[attribute.Key]attribute.Value)
		for _, kv := range span.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		assert.Equal(t, "board-7", attrs[attrBoardID].AsString(), span.Name())
		assert.Equal(t, "A visitor posted to their board", attrs[attrEventDescription].AsString(), span.Name())
	}
}

func TestSetupOTel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled tracing", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{Enabled: false})
		require.NoError(t, err)
		require.NotNil(t, tracer)

		_, span := tracer.Start(ctx, "test")
		span.End()
		assert.False(t, span.SpanContext().IsValid(), "no-op spans carry no context")

		assert.NoError(t, cleanup(ctx))
	})

	t.Run("enabled tracing", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{
			Enabled:     true,
			ServiceName: "test-service",
			ZipkinURL:   "http://localhost:9411/api/v2/spans",
		})
		require.NoError(t, err)
		require.NotNil(t, tracer)

		shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = cleanup(shutdownCtx)
	})

	t.Run("invalid zipkin url", func(t *testing.T) {
		_, _, err := SetupOTel(ctx, TracingConfig{
			Enabled:   true,
			ZipkinURL: "://not-a-url",
		})
		assert.Error(t, err)
	})
}
