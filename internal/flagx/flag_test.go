package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", ":8080", "-x", "other", "-s", "secret"}
	got := FilterArgs(args, []string{"-a", "-s"})
	assert.Equal(t, []string{"-a", ":8080", "-s", "secret"}, got)
}

func TestFilterArgs_CombinedValue(t *testing.T) {
	args := []string{"--addr=:9090", "--junk=1"}
	got := FilterArgs(args, []string{"--addr"})
	assert.Equal(t, []string{"--addr=:9090"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// "-v" is boolean-ish: the next token is another flag, not a value.
	args := []string{"-v", "-a", ":8080"}
	got := FilterArgs(args, []string{"-v"})
	assert.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_EmptyResultIsNotNil(t *testing.T) {
	got := FilterArgs([]string{"-q", "1"}, []string{"-a"})
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}
