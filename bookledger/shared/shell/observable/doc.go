// Package observable provides wrapper components for instrumenting command and query handlers
// with metrics, tracing, and logging while keeping the business logic pure.
//
// The wrappers are applied externally at bootstrap/wiring time, not hidden inside
// factory functions, so the observability composition stays explicit:
//
//	// 1. Create the pure business logic handler
//	coreHandler := requestbook.NewCommandHandler(eventStore)
//
//	// 2. Wrap it with the observability concerns you need
//	observableHandler, err := observable.NewCommandWrapper[requestbook.Command](
//		coreHandler,
//		observable.WithCommandMetrics[requestbook.Command](metricsCollector),
//		observable.WithCommandTracing[requestbook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[requestbook.Command](contextualLogger),
//	)
//
//	// 3. Use the wrapped handler in the application
//	result, err := observableHandler.Handle(ctx, command)
//
// Every option is independent, so a deployment can wire only metrics, only
// tracing, or nothing at all. Unit tests of the protocol use the core handlers
// directly and never pay for the instrumentation.
package observable
