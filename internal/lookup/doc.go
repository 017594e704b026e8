// Package lookup answers "what does the tracker have for this movie?" with a
// durable cache in front of the tracker API.
//
// A lookup consults the cache first; a fresh entry is returned as-is with no
// network traffic. On a miss the gateway performs exactly one tracker search,
// writes the complete raw payload through to the cache, and returns the
// decoded response. There is no partial caching: a failed search caches
// nothing, so the next run retries it.
package lookup
