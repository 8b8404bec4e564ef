// Package ciutil detects CI environments and resolves the environment
// variables integration tests use to find their database.
package ciutil
