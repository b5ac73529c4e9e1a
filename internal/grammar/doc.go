// Package grammar holds the asset naming convention as data: token
// vocabularies, the priority-ordered category pattern table, and the
// category-to-folder routing rules.
//
// The [Table] is the single source of truth mirrored from the naming
// convention document. It is immutable after construction and is passed
// explicitly into the parser and planner; nothing in this package mutates
// state after [Default] returns.
package grammar
