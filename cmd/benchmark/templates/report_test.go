package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	out := Report("Digest <bench>", []Row{{
		Name:       "propagate: 1 * 1",
		Watches:    1,
		Digests:    4,
		WatchCalls: 8,
		Avg:        time.Microsecond,
	}})

	assert.Contains(t, out, "# Digest &lt;bench&gt;")
	assert.Contains(t, out, "| propagate: 1 * 1 | 1 | 2 | 1µs |")
}
