// Package sync mirrors Ashby recruiting data into the local database.
//
// # Core Types
//
//   - Reconciler: upserts one application, its candidate and its feedback
//   - Manager: orchestrates full syncs, stage-filtered candidate syncs and
//     webhook events on top of a Reconciler
//
// The sync/coordinator subpackage schedules passes in the background, the
// sync/writer subpackage persists records and the sync/state subpackage keeps
// the ledger of past runs.
//
// # Stage Filter
//
// Only applications whose current stage title is in a fixed allow-list of
// interview stages are mirrored. See IsRelevantStage.
//
// # Error Handling
//
// A failure to list applications aborts the pass and is returned as *Error.
// Failures while fetching or reconciling a single application are logged
// with the application id and counted, and the pass moves on. Applications
// without an id or candidate payload are skipped with ErrSkipped.
package sync
