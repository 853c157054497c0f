// Package jshost provides procenv.Process for Go programs compiled to js/wasm.
//
// Two JavaScript hosts are supported. When the global Deno object is present the Deno
// runtime APIs are used (Deno.args, Deno.stdout.writeSync, Deno.exit,
// Deno.addSignalListener). Otherwise the process is assumed to run under Node.js
// (the argv wasm_exec passes to Go, process.stdout.write, process.exit, process.on).
//
// The host primitives are fixed: procenv options that replace arguments, streams, or
// exit are rejected with procenv.ErrNotSupported.
//
// Signal handlers run from the JavaScript event loop and must not block.
//
// Only the selection and policy code builds on every target; the provider itself needs
// GOOS=js GOARCH=wasm. Its tests run under Node with the go_js_wasm_exec wrapper
// shipped in the Go distribution.
package jshost
