//go:build poolqueue_release

package pool

const validating = false
