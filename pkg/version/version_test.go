package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHashCapsAtEightChars(t *testing.T) {
	assert.Equal(t, "a3f8c2d1", shortHash("a3f8c2d1e9b74456"))
	assert.Equal(t, "dev", shortHash("dev"))
}

func TestFullPrefixesAppName(t *testing.T) {
	assert.Equal(t, AppName+"/"+GitCommit, Full())
}
