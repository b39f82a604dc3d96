package router

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type recordingInstrument struct {
	tp *sdktrace.TracerProvider
}

func (i recordingInstrument) Tracer(name string) trace.Tracer { return i.tp.Tracer(name) }

func (recordingInstrument) Meter(name string) metric.Meter {
	return metricnoop.NewMeterProvider().Meter(name)
}

func (i recordingInstrument) Shutdown(ctx context.Context) error { return i.tp.Shutdown(ctx) }

func spanAttr(s sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddlewareObservability_SpanCarriesCorrelationID(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	ins := recordingInstrument{tp: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))}
	t.Cleanup(func() { _ = ins.Shutdown(context.Background()) })

	r := NewRouter(Config{UUID: fixedID("cid-generated"), Instrument: ins})
	r.GET("/ping", func(*Request) (any, error) { return echoResponse{}, nil })

	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{name: "from caller", header: http.Header{HeaderRequestID: {"from-proxy"}}, want: "from-proxy"},
		{name: "generated", want: "cid-generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(recorder.Ended())

			rec := serve(r, http.MethodGet, "/ping", tt.header)
			require.Equal(t, http.StatusOK, rec.Code)

			ended := recorder.Ended()
			require.Len(t, ended, before+1)
			span := ended[len(ended)-1]

			assert.Equal(t, "GET /ping", span.Name())
			got, ok := spanAttr(span, spanAttrCorrelationID)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.AsString())
		})
	}
}
