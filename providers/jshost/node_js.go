//go:build js && wasm

package jshost

import (
	"os"
	"syscall/js"

	"github.com/ruffel/procenv"
)

type nodeHost struct {
	process js.Value
}

// argv returns the Go-side argument vector. process.argv also carries the node binary
// and the wasm_exec loader ahead of the program, so wasm_exec's own argv is used instead.
func (h nodeHost) argv() []string {
	return os.Args
}

func (h nodeHost) write(stream, s string) error {
	return catch(func() {
		h.process.Get(stream).Call("write", s)
	})
}

func (h nodeHost) exit(code int) {
	h.process.Call("exit", code)
}

func (h nodeHost) addListener(name string, fn js.Func) error {
	return catch(func() {
		h.process.Call("on", name, fn)
	})
}

func (h nodeHost) removeListener(name string, fn js.Func) {
	_ = catch(func() {
		h.process.Call("off", name, fn)
	})
}

func (h nodeHost) targetOS() procenv.TargetOS {
	return procenv.ParseTargetOS(h.process.Get("platform").String())
}
