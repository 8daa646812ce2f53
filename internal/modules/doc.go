// Package modules contains all self-contained application features.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go`; the server registers them,
// then boots each one on the route group "/" + Name().
package modules
