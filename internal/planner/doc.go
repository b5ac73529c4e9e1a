// Package planner aggregates per-file classification into a sort plan:
// moves, unclassified files, invalid files, and duplicate-destination
// conflicts. Planning is a pure function from a filename list to a plan;
// the executor package applies the plan to the filesystem.
package planner
