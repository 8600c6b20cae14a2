// Package input loads the two documents being compared.
//
// Load(path) reads a whole file into memory; there is no size limit and no
// streaming. LoadPair(paths) enforces the two-path contract: fewer than two
// paths is ErrTooFewInputs, and any paths after the second are returned as
// ignored so the caller can warn about them.
//
// Watch(ctx, paths, onChange) uses fsnotify to detect writes to either input
// and calls onChange after each one. It watches the parent directories so the
// rename→create pattern used by atomic-save editors (vim, VS Code) is seen as a
// Create of the input name.
package input
