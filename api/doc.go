// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the ringfifo library.
// Defines the FIFO container interface, sizing and ownership modes,
// and the common error taxonomy shared by all implementations.
package api
