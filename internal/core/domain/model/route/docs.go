// Package route contains the Route aggregate: a transport order between two
// geographic points that progresses through a strict lifecycle and binds at
// most one carrier. The aggregate owns the transition table, the set-once
// actual timestamps and the carrier fee derived from distance and rate.
package route
