package core

import "fmt"

// Handle is a stable reference to an entity slot in a generational arena
// A handle stays valid while its entity lives; once removed, the slot's generation
// advances and stale handles stop resolving
type Handle struct {
	Index      uint32
	Generation uint32
}

// InvalidHandle is the zero handle, never issued by an arena
var InvalidHandle = Handle{}

// IsValid reports whether the handle was issued by an arena
func (h Handle) IsValid() bool {
	return h.Generation != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Generation)
}
