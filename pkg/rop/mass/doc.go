// Package mass holds the concurrent building blocks behind lite: per-item
// stages (Validating, Switching, Mapping, Trying) that return a one-shot
// channel, and channel reducers (Finalizing, Pairing).
package mass
