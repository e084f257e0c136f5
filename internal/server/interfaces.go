package server

// Server is the lifecycle contract of the users API server.
//
// [RunServer] blocks until a stop signal (SIGTERM, SIGINT or SIGQUIT) arrives
// or the listener fails. [Shutdown] stops accepting connections and waits for
// in-flight requests up to the configured shutdown timeout.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
