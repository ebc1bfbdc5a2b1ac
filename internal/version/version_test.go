package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "gorcc v"+Version+" (commit unknown, built unknown)", String())
}
