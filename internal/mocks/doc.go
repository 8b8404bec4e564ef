// Package mocks provides hand-written test doubles for the ports used by
// generation, the HTTP layer and the mirror command. Each mock exposes
// ...Fn override fields and records its calls.
package mocks
