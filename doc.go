// Package mvckit is an in-process publish/subscribe and named-registry
// engine for event-driven application cores.
//
// An App aggregates three registries behind one surface: a Model holding
// named proxies (data access), a View holding named mediators and the
// observer lists notifications fan out through, and a Controller binding
// notification names to command factories. Notifications are plain named
// envelopes; broadcasting one delivers it synchronously, on the calling
// goroutine, to every observer registered for its name, in registration
// order.
//
// Construct an application context explicitly and pass it to the code that
// needs it; there is no package-level instance, and separate App values
// never share state:
//
//	app, err := mvckit.New()
//	if err != nil {
//		// ...
//	}
//
//	app.RegisterCommand("app.start", func() mvckit.Command {
//		return &StartupCommand{}
//	})
//	app.RegisterProxy(NewSessionProxy())
//	app.RegisterMediator(NewTerminalMediator(os.Stdout))
//
//	app.SendNotification("app.start", mvckit.WithBody(cfg))
//
// Participants implement one of three small interfaces. A Proxy owns a
// slice of application data. A Mediator wraps a view component and declares
// the notification names it handles. A Command carries one unit of
// application logic and is constructed fresh for every execution. Any of
// them may embed Notifier to gain a SendNotification bound to the owning
// app at registration time.
//
// Registries are safe for concurrent use, and dispatch holds no locks while
// handlers run, so handlers may freely register, remove, and broadcast.
// Changes to an observer list made during a broadcast of the same name take
// effect on the next broadcast, never the one in flight.
//
// For consumers that live on their own goroutines, App.Stream bridges
// selected notification names onto a channel without changing dispatch
// semantics. NewFromEnv builds an App whose logger and stream buffer come
// from MVCKIT_* environment variables.
package mvckit
