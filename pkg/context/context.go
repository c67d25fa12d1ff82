package context

import (
	"context"
	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the context key the request id travels under once it
// leaves the Fiber layer. Repositories and services read it back for their
// log fields.
const RequestIDKey = "request_id"

// WithRequestID attaches a request id to ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID returns the request id carried by ctx, or "unknown" when the
// ctx never passed through the request-id middleware.
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx bridges a Fiber request into a context.Context, carrying the
// request id that the middleware stored in locals (falling back to the
// inbound header).
func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := context.Background()

	requestID, ok := c.Locals("X-Request-ID").(string)
	if !ok || requestID == "" {
		requestID = c.Get("X-Request-ID")

		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(ctx, requestID)
}
