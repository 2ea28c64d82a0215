// Package verifier orchestrates a full billchain verification run.
//
// A run parses the input once and then runs two scans over the same immutable
// ledger.Blockchain:
//   - the chain scan (ledger.ValidateChain) on the calling goroutine
//   - the hash integrity scan (ledger.VerifyIntegrity) on a worker goroutine
//
// A content failure found by the chain scan wins: the worker is cancelled and
// its result is dropped. Otherwise the run waits for the worker and adopts its
// verdict. A balance report is produced only when both scans succeed.
//
// # States
//
// Every run moves Idle -> Running -> Valid or Invalid.
//
// # Metrics
//
// Runs are recorded in Prometheus collectors registered on the default
// registry; WriteMetrics exports them in the textfile collector format.
package verifier
