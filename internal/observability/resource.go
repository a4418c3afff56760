package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceVersion is stamped at build time with
// -ldflags "-X cutdata/internal/observability.ServiceVersion=...".
var ServiceVersion = "dev"

// ServiceName returns OTEL_SERVICE_NAME or the default service name.
func ServiceName() string {
	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = "cutdata-api"
	}
	return name
}

// newResource describes this service to every OTel provider. Attributes
// from OTEL_RESOURCE_ATTRIBUTES are merged in.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(
		ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName()),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
}
