package syncqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelaySchedule(t *testing.T) {
	base := 30 * time.Second
	assert.Equal(t, 30*time.Second, backoffDelay(base, 1))
	assert.Equal(t, 60*time.Second, backoffDelay(base, 2))
	assert.Equal(t, 120*time.Second, backoffDelay(base, 3))
	assert.Equal(t, 240*time.Second, backoffDelay(base, 4))
}
