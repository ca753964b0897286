package telemetria

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Tracer começa no provider global (noop até IniciarTracing configurar o
// provider real), então pode ser usado antes da inicialização.
var Tracer trace.Tracer = otel.Tracer("api-imoveis")

// IniciarTracing configura o OpenTelemetry: exporta por OTLP HTTP quando há
// endpoint configurado, senão usa um exportador nulo (desenvolvimento local).
func IniciarTracing(nomeServico, endpoint string) error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(nomeServico),
		),
	)
	if err != nil {
		return fmt.Errorf("criando resource: %w", err)
	}

	var exportador sdktrace.SpanExporter
	if endpoint != "" {
		exportador, err = otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(endpoint),
		)
		if err != nil {
			return fmt.Errorf("criando exportador OTLP: %w", err)
		}
	} else {
		log.Println("OTEL_ENDPOINT ausente; tracing com exportador nulo")
		exportador = &exportadorNulo{}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exportador),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	Tracer = otel.Tracer(nomeServico)
	return nil
}

type exportadorNulo struct{}

func (e *exportadorNulo) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (e *exportadorNulo) Shutdown(ctx context.Context) error { return nil }
