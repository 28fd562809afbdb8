package display

/*
The advisory locking protocol. A single mutex serializes every print and
configuration operation. Lock/Unlock additionally let one goroutine hold
the mutex across several prints so the group reaches its stream as one
uninterrupted block:

	d.Lock()
	d.Print("report", "header")
	d.Print("report", "detail %d", i)
	d.Unlock()

While the bracket is open the owner's own prints and setters skip
acquisition; prints and setters from other goroutines block until Unlock.
*/

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// mutexDomain couples the facility mutex with the advisory bracket owner.
// owner holds the goroutine id of the bracket holder, 0 when free.
type mutexDomain struct {
	sync.Mutex
	owner atomic.Int64
}

// goroutineID extracts the current goroutine's id from its stack header
// ("goroutine N [running]: ..."). Ids start at 1, which leaves 0 free to
// mean "no owner". Panics if the header cannot be parsed.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	idField := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))[0]
	id, err := strconv.ParseInt(idField, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("cannot get goroutine id: %v", err))
	}
	return id
}

// acquire enters the mutex domain unless the calling goroutine already
// holds the advisory bracket. Reports whether the mutex was taken and must
// be handed back to release.
func (d *Display) acquire() bool {
	if d.mtx.owner.Load() == goroutineID() {
		return false
	}
	d.mtx.Lock()
	return true
}

// release leaves the mutex domain if acquire took it.
func (d *Display) release(acquired bool) {
	if acquired {
		d.mtx.Unlock()
	}
}

// Lock opens an advisory bracket: the calling goroutine takes the mutex
// and keeps it across subsequent prints and setters until Unlock. Calling
// Lock again from the bracket holder is a no-op; from any other goroutine
// it blocks until the bracket closes.
func (d *Display) Lock() {
	gid := goroutineID()
	if d.mtx.owner.Load() == gid {
		return
	}
	d.mtx.Lock()
	d.mtx.owner.Store(gid)
}

// Unlock closes the advisory bracket. Only the bracket holder releases it;
// for every other caller, including goroutines that never locked, Unlock
// is a no-op.
func (d *Display) Unlock() {
	if d.mtx.owner.Load() != goroutineID() {
		return
	}
	d.mtx.owner.Store(0)
	d.mtx.Unlock()
}
