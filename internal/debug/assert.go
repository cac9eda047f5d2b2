package debug

import "sync/atomic"

// Assert panics with msg when checking is enabled and cond is false.
// Release builds compile the whole call away.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic("contract violation: " + msg)
	}
}

var ownerSeq atomic.Uint32

// NextOwnerID returns a process-unique buffer identity. Ids start at 1 so
// the zero value never matches a stamped buffer. Release builds return 0
// and never compare the result.
func NextOwnerID() uint32 {
	if !Enabled {
		return 0
	}
	return ownerSeq.Add(1)
}
