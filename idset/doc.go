// Package idset provides an ordered set of non-negative integer
// identifiers, backed by a Roaring Bitmap.
//
// It is the occupancy-tracking collaborator of the idmap container:
// membership, checked insert/remove, iteration in increasing order, and
// the set algebra (intersection, in-place difference) used by bulk
// removal.
//
// Sets are not safe for concurrent use.
package idset
