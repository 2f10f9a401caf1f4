package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.RWMutex
	resetHook func()
)

// SetResetHook installs the function that restores the host display before a crash report
// Hosts owning a terminal pass their screen teardown; nil disables
func SetResetHook(fn func()) {
	resetMu.Lock()
	defer resetMu.Unlock()
	resetHook = fn
}

// HandleCrash is the unified panic handler that resets the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.RLock()
	hook := resetHook
	resetMu.RUnlock()
	if hook != nil {
		hook()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so the display is restored on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
