// Package hashtable provides a string-keyed open-addressing table.
//
// Collisions are resolved with quadratic probing (offsets 1, 3, 5, ... added
// cumulatively, so a probe visits hash, hash+1, hash+4, hash+9, ...). Removed
// entries leave tombstones that keep probe chains intact. A tombstone is only
// rewritten by a later insert of the same key; other keys probe past it.
//
// When more than half of the slots are active the table rehashes into its
// configured target capacity. Growth past the target doubles to the next
// prime.
package hashtable
