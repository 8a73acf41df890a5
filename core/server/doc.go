// Package server wraps http.Server with graceful shutdown, environment
// based configuration, and functional options.
//
//	cfg := server.DefaultConfig()
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := srv.Start(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal(err)
//	}
package server
