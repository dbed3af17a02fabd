// Package trace provides tracing for the fncomp expansion pipeline.
//
// Enable tracing via command-line flags:
//
//	fncomp expand --trace=- --trace-level=detail src/
//
// Tracer implementations:
//
//   - Nop: no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a run fails
//   - MultiTracer: combines multiple tracers
//
// Levels: off, error, phase (driver and pass boundaries), detail (per file),
// debug (per annotated item).
//
// Tracers are propagated via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
