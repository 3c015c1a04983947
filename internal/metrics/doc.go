// Package metrics records stage timings and example outcomes of a run.
//
// Components receive a Recorder; NoopRecorder is the default and does
// nothing. PrometheusRecorder keeps its metrics on a private registry and can
// dump them in text exposition format for the node exporter's textfile
// collector, which suits a batch job that never serves HTTP:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	// ... run the pipeline with rec ...
//	err := rec.WriteTextfile("/var/lib/node_exporter/errmatrix.prom")
package metrics
