package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary keys into random readable names. It never forgets a
// name, so it is only meant for the handful of keys a single run produces. The
// command line tool uses it to label each run by its input.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Describe how much a simplification removed, e.g. "120 → 14 (88.3% removed)".
// Green when anything was removed, yellow otherwise.
func Reduction(au aurora.Aurora, before, after int) string {
	var removed float64
	if before > 0 {
		removed = 100 * float64(before-after) / float64(before)
	}
	text := fmt.Sprintf("%d → %d (%.1f%% removed)", before, after, removed)
	if after < before {
		return au.Green(text).String()
	}
	return au.Yellow(text).String()
}
