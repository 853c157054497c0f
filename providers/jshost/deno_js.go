//go:build js && wasm

package jshost

import (
	"io"
	"syscall/js"

	"github.com/ruffel/procenv"
)

type denoHost struct {
	deno js.Value
}

func (h denoHost) argv() []string {
	return stringSlice(h.deno.Get("args"))
}

// write hands the bytes to Deno.<stream>.writeSync, looping over short writes.
// An empty string still issues one writeSync call.
func (h denoHost) write(stream, s string) error {
	return catch(func() {
		file := h.deno.Get(stream)
		data := []byte(s)

		for {
			buf := js.Global().Get("Uint8Array").New(len(data))
			js.CopyBytesToJS(buf, data)

			n := file.Call("writeSync", buf).Int()
			if len(data) == 0 {
				return
			}

			if n <= 0 {
				panic(js.Error{Value: js.Global().Get("Error").New(io.ErrShortWrite.Error())})
			}

			data = data[n:]
			if len(data) == 0 {
				return
			}
		}
	})
}

func (h denoHost) exit(code int) {
	h.deno.Call("exit", code)
}

func (h denoHost) addListener(name string, fn js.Func) error {
	return catch(func() {
		h.deno.Call("addSignalListener", name, fn)
	})
}

func (h denoHost) removeListener(name string, fn js.Func) {
	_ = catch(func() {
		h.deno.Call("removeSignalListener", name, fn)
	})
}

func (h denoHost) targetOS() procenv.TargetOS {
	return procenv.ParseTargetOS(h.deno.Get("build").Get("os").String())
}
