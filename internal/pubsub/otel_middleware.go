package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrBoardID          = "board.id"
	attrEventDescription = "board.event.description"
)

// spanAttributes describes msg for a span. Payloads are never recorded since
// board messages are user-written text; only their size is.
func spanAttributes(operation, topic string, msg *message.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", msg.UUID),
		attribute.String(attrBoardID, msg.Metadata.Get(metaKeyUserID)),
		attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
	}
	if desc := msg.Metadata.Get(MetaKeyEventDescription); desc != "" {
		attrs = append(attrs, attribute.String(attrEventDescription, desc))
	}
	return attrs
}

// startSpan opens a span named pubsub.<operation>.<topic> as a child of the message context.
func startSpan(tracer trace.Tracer, operation, topic string, msg *message.Message) trace.Span {
	ctx := msg.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	spanCtx, span := tracer.Start(ctx, "pubsub."+operation+"."+topic,
		trace.WithAttributes(spanAttributes(operation, topic, msg)...))
	msg.SetContext(spanCtx)
	return span
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// TracingMiddleware wraps a watermill handler so every processed message runs inside a span.
func TracingMiddleware(tracer trace.Tracer) func(message.HandlerFunc) message.HandlerFunc {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			span := startSpan(tracer, "process", msg.Metadata.Get(metaKeyTopic), msg)
			defer span.End()

			produced, err := h(msg)
			if err != nil {
				failSpan(span, err)
				return nil, err
			}
			span.SetAttributes(attribute.Int("messaging.messages_produced", len(produced)))
			return produced, nil
		}
	}
}

// PublisherTracingMiddleware wraps a watermill publisher so each published message gets a span.
type PublisherTracingMiddleware struct {
	publisher message.Publisher
	tracer    trace.Tracer
}

// NewPublisherTracingMiddleware creates a new publisher with tracing middleware
func NewPublisherTracingMiddleware(publisher message.Publisher, tracer trace.Tracer) *PublisherTracingMiddleware {
	return &PublisherTracingMiddleware{
		publisher: publisher,
		tracer:    tracer,
	}
}

// Publish wraps the publish operation with tracing
func (p *PublisherTracingMiddleware) Publish(topic string, messages ...*message.Message) error {
	spans := make([]trace.Span, 0, len(messages))
	for _, msg := range messages {
		spans = append(spans, startSpan(p.tracer, "publish", topic, msg))
	}

	err := p.publisher.Publish(topic, messages...)
	for _, span := range spans {
		if err != nil {
			failSpan(span, err)
		}
		span.End()
	}
	return err
}

// Close closes the underlying publisher
func (p *PublisherTracingMiddleware) Close() error {
	return p.publisher.Close()
}
