// Package detect chooses the procenv provider for the running host.
//
// Native builds always get the local provider. A js/wasm build checks for the Deno
// global and binds to Deno when it is present, Node.js otherwise.
//
// Selection is deterministic and free of side effects beyond constructing the
// returned Process: it reads no arguments, writes nothing, and registers no signals.
// Callers typically call New once at startup and pass the result to the code that
// needs it. The returned Process also implements io.Closer.
package detect
