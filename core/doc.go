// Package core provides the core service every feature is built on.
//
// A Service is constructed from a validated Config, collects initialization
// hooks, and runs them once on Initialize:
//
//	svc, err := core.New(&core.Config{AppName: "billing", Version: "1.2.0"})
//	if err != nil {
//	    return err
//	}
//	_ = svc.OnInitialize(func(ctx context.Context) error { return db.Ping(ctx) })
//	if err := svc.Initialize(ctx); err != nil {
//	    return err
//	}
//	fmt.Println(svc.ServiceInfo()) // billing v1.2.0 ready
package core
