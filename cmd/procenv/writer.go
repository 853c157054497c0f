package main

import (
	"sync"

	"github.com/ruffel/procenv"
)

// streamWriter adapts one stream of a Process to io.Writer so cobra, the logger, and
// the renderers all write through the capability. The target can be swapped once
// configuration has built the real process; writers already handed out follow it.
type streamWriter struct {
	mu     sync.Mutex
	proc   procenv.Process
	stderr bool
}

func stdoutWriter(p procenv.Process) *streamWriter { return &streamWriter{proc: p} }

func stderrWriter(p procenv.Process) *streamWriter { return &streamWriter{proc: p, stderr: true} }

// follow redirects later writes to p.
func (w *streamWriter) follow(p procenv.Process) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.proc = p
}

func (w *streamWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	p := w.proc
	w.mu.Unlock()

	write := p.Stdout
	if w.stderr {
		write = p.Stderr
	}

	if err := write(string(b)); err != nil {
		return 0, err
	}

	return len(b), nil
}
