// Package shared holds cross-cutting utilities that belong to no single
// engine package. Today that is only testutil, the log-capture helpers used
// by tests across the codebase. It must stay free of business logic and of
// dependencies on the other internal packages.
package shared
