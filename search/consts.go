package search

import "math"

// Unbounded is a convenience value callers can pass for a filterWidth,
// beamWidth, rakeWidth or depthLimit parameter that should impose no cap at
// all (i.e. "consider every branch"), since every one of those parameters
// must be strictly positive, and 0/negative therefore cannot mean "no
// limit" the way it might elsewhere.
const Unbounded = math.MaxInt
