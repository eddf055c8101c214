// Package convert coordinates the end-to-end conversion pipeline:
// index load, profile fetch, parse, slot mapping, XML serialization,
// and preset save.
//
// The Manager is the single entry point used by both the CLI and the
// TUI:
//
//	manager := convert.NewManager(settings, func(event convert.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.LoadIndex(ctx); err != nil { ... }
//	matches := manager.Search("hd 650")
//	result, err := manager.Convert(ctx, matches[0])
//	path, err := manager.Save(ctx, result)
//
// Progress is reported through leveled ProgressEvents; front-ends decide
// how to render (or filter) them.
//
// The index is cached on disk and revalidated with ETags, falling back
// to the cached copy when the network is unavailable. Profile data is
// fetched in both published forms concurrently, preferring the
// fixed-band text file.
package convert
