// Package metrics provides observability hooks for site generation.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection needs no nil checks at call sites:
//
//	gen := hugo.NewGenerator(cfg, outDir)                    // NoopRecorder
//	gen = gen.WithRecorder(metrics.NewPrometheusRecorder(reg)) // real metrics
//
// The watch command exposes the registry through HTTPHandler when started with
// --metrics-addr.
package metrics
