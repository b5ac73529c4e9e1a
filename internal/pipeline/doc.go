// Package pipeline orchestrates file discovery, plan building, rendering,
// execution, and the watch loop.
package pipeline
