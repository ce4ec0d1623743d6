// Package server wires and runs the application's HTTP transport.
//
// It provides the bind/run lifecycle of the listener, including signal
// handling and graceful shutdown.
package server
