// Package tracker queries the remote torrent indexer for releases of a single
// movie.
//
// One search request covers one IMDb ID at one resolution tier. There is no
// retry at this layer; a failed search surfaces as a transport error and the
// caller decides whether the run continues. The response schema is validated
// during decode so an unexpected body shape is reported instead of crashing
// on a missing field later.
package tracker
