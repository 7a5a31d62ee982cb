// Package uuidgen generates random (version 4) UUID strings.
//
// Random bytes come from a host-integrated secure generator when the
// current execution context provides one, otherwise from the runtime
// generator (crypto/rand). The package-level New covers the common case:
//
//	id, err := uuidgen.New()
//
// Applications that want a pinned source, tracing or export to storage use
// the Service façade:
//
//	srv := uuidgen.NewService(uuidgen.WithMode(random.ModeRuntime))
//	ids, _ := srv.Generate(ctx, 10)
//	_ = srv.Export(ctx, "file:///tmp/ids.txt", 100)
package uuidgen
