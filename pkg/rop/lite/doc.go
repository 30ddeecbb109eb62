// Package lite wires mass stages into worker lines with default
// cancellation behaviour. Build a pipeline with Run/Turnout and end it with
// Finally (handlers) or Pairs (error-first pairs).
package lite
