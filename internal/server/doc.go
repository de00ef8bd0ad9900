// Package server runs the HTTP transport of the user-management service:
// startup, signal handling and graceful shutdown.
package server
