// Package log provides the structured logging abstraction for hitship.
//
// The library never logs on its own behalf unless given a Logger; pass
// one with hitship.WithLogger:
//
//	v, err := hitship.New(cfg, hitship.WithLogger(log.NewZerologAdapter()))
//
// Implement the Logger interface to route messages to any other backend.
package log
