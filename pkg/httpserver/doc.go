// Package httpserver runs an http.Server with context-driven graceful
// shutdown.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns nil after a clean shutdown, an error wrapping ErrStart if the
// server could not listen, or one wrapping ErrShutdown if in-flight requests
// outlived the shutdown timeout.
package httpserver
