package executor

// Func adapts an ordinary function to the submit contract.
type Func func(task func())

// Submit calls f(task).
func (f Func) Submit(task func()) {
	f(task)
}

// Go returns an executor that starts a new goroutine for every task.
func Go() Func {
	return func(task func()) {
		go task()
	}
}

// Inline returns an executor that runs every task before Submit returns.
func Inline() Func {
	return func(task func()) {
		task()
	}
}
