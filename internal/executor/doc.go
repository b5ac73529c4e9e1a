// Package executor applies a sort plan to the filesystem: it creates
// destination folders and moves or copies each planned entry. Conflict,
// invalid, and unclassified entries are never touched; the planner has
// already resolved destinations, so execution is plain sequential I/O.
package executor
