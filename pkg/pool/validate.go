//go:build !poolqueue_release

package pool

// validating enables the high-water assertion on every allocation and the
// leak check in Close. Build with -tags poolqueue_release to strip both.
const validating = true
