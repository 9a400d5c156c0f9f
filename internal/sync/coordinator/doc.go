// Package coordinator provides background synchronization scheduling for
// Ashby data.
//
// It sits on top of sync.Manager and handles:
//
//   - A one-shot full sync at startup, run on its own goroutine so the API
//     becomes ready immediately
//   - Periodic candidate syncs driven by a time.Ticker
//   - Graceful shutdown
//
// # Usage Example
//
//	manager := sync.NewDefaultSyncManager(source, writer)
//	coord := coordinator.New(manager, cfg.Sync)
//
//	go coord.Start(ctx)
//	// ... run server ...
//	coord.Stop()
//
// # Error Handling
//
// Passes that fail are logged and retried on the next tick. No lock is held
// between passes, so a startup sync and a tick may overlap; writes are
// create-or-replace and the last writer wins.
package coordinator
