package services

import (
	"fmt"
	"hash/fnv"
)

// titlePrefixLen is the number of title characters hashed into the key.
// Two articles whose titles share a 50-character prefix and ordinal would
// collide; the ordinal component makes that impossible within a batch.
const titlePrefixLen = 50

// DocumentKey derives the stable index key for an article at the given
// batch position. The same (ordinal, title) pair always produces the same
// key, across processes, which is what makes re-indexing idempotent: the
// index service reports a conflict instead of storing a duplicate.
func DocumentKey(ordinal int, title string) string {
	prefix := title
	if runes := []rune(title); len(runes) > titlePrefixLen {
		prefix = string(runes[:titlePrefixLen])
	}

	h := fnv.New64a()
	h.Write([]byte(prefix))
	return fmt.Sprintf("article_%d_%x", ordinal, h.Sum64())
}
