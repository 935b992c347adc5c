package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old := GitCommit
	GitCommit = "abc123"
	defer func() { GitCommit = old }()

	assert.Equal(t, "gorebar v"+Version+" (commit abc123, built "+BuildTime+")", String())
}
