// Package buffer implements the model core of the editor: the point,
// the selection mark, the clipboard register, search, and the damage
// protocol that tells a display how much of the screen an edit made
// stale.
//
// The buffer owns no text. Character storage, line indexing, and bulk
// I/O are delegated to a textstore.Store; rendering is delegated to a
// Display; user-visible complaints go to a Messenger. Both
// collaborators are optional, so the same buffer drives an interactive
// session and a headless batch run.
//
// Every mutating operation follows the same ritual: record damage
// against the pre-edit point, hand the mutation to the store, shift
// the mark if the edit landed at or before it, set the modified flag.
// The display later calls Update, which reports the accumulated damage
// level with the point's (and mark's, when set) row and column, then
// resets the damage to clean.
//
// Positions are rune offsets, 0 <= offset <= Len. The buffer is not
// safe for concurrent use: it has exactly one mutator at a time, the
// session driving it.
package buffer
