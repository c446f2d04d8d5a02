// Package carrier contains the Carrier aggregate: a fleet vehicle with a
// cargo capability type, an availability status and a per-kilometre rate.
// The aggregate enforces the busy-edit guard (a BUSY carrier may only be
// released) and owns the AVAILABLE/BUSY flips that pair with the route
// lifecycle.
package carrier
