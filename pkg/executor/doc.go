// Package executor provides implementations of the submit-a-task contract
// used for asynchronous change listeners.
//
// Anything with a Submit(func()) method can dispatch listeners; this package
// offers three ready-made choices:
//
//	executor.Go()            // one goroutine per task
//	executor.Inline()        // run on the caller (tests, debugging)
//	executor.NewPool(4, 256) // bounded worker pool
//
// A Pool recovers task panics so one failing listener cannot take down its
// workers. Recovered panics are logged and passed to the handler installed
// with WithPanicHandler; they are never dropped silently.
package executor
