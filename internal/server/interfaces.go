package server

// Server is the lifecycle of the search API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops the server and frees its listener.
	Shutdown()
}
