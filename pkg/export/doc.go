// Package export flattens a person subset into plain node and edge
// lists, the only shape the rendering side ever sees.
//
// The core keeps people as linked pedigree.Person values; renderers
// and the preview server want identifiers, labels, and parent-to-child
// pairs. [FromPeople] performs that projection: one node per person,
// one edge per parent/child link whose two ends both lie in the
// subset. Links leaving the subset are dropped rather than dangling.
//
// Graphs round-trip through JSON with [WriteJSON] and [ReadJSON], so a
// computed subset can be saved once and re-rendered later without
// re-reading the source file.
package export
