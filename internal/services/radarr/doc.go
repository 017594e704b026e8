// Package radarr fetches the local movie inventory from a Radarr v3 API.
//
// The client performs a single authenticated request per run and returns the
// movies in Radarr's own ordering. A transport or status failure here is
// fatal to the run: without the inventory there is nothing to reconcile.
package radarr
