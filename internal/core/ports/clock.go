package ports

import (
	"time"
)

// Clock abstracts the wall clock for history stamps, settlement period math
// and due-date computation, so tests can pin time.
type Clock interface {
	Now() time.Time
}
