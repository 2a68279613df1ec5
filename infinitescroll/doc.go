// Package infinitescroll adds "load more at the end" behavior to a
// scrollable host.
//
// Attach a loader to a host. When a user drag crosses the trigger boundary
// near the end of the content, an indicator is shown past the content end,
// extra inset is reserved for it, and the loader is called shortly after.
// The loader appends content and calls Finish, which gives back exactly the
// inset that was reserved and hides the indicator.
//
//	infinitescroll.Attach(list, func(h infinitescroll.Host) {
//		go func() {
//			rows := fetchPage()
//			list.Loop().Submit(func() {
//				list.PerformBatchUpdates(func() { list.AppendRows(rows...) })
//				infinitescroll.Finish(h, nil)
//			})
//		}()
//	})
//
// All functions must be called from the host's loop goroutine. Background
// work hops back with retained.Loop.Submit before touching the host.
package infinitescroll
