package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestroyPhrase(t *testing.T) {
	assert.Equal(t, "destroy-production", destroyPhrase("production"))
	assert.Equal(t, "destroy-development", destroyPhrase("development"))
}

func TestDeployConfirmed(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "YES", " y\n"} {
		assert.True(t, deployConfirmed(answer), "answer %q", answer)
	}
	for _, answer := range []string{"", "\n", "n", "no", "maybe", "yess"} {
		assert.False(t, deployConfirmed(answer), "answer %q", answer)
	}
}

func TestDestroyConfirmedExactPhrase(t *testing.T) {
	assert.True(t, destroyConfirmed("destroy-staging\n", "staging"))
	assert.True(t, destroyConfirmed("destroy-staging", "staging"))

	// Case matters, as does the environment.
	assert.False(t, destroyConfirmed("Destroy-staging\n", "staging"))
	assert.False(t, destroyConfirmed("DESTROY-STAGING\n", "staging"))
	assert.False(t, destroyConfirmed("destroy-production\n", "staging"))
	assert.False(t, destroyConfirmed("destroy staging\n", "staging"))
	assert.False(t, destroyConfirmed("\n", "staging"))
}

func TestDestroyConfirmedRejectsPadding(t *testing.T) {
	// Leading whitespace is not forgiven; only the trailing newline is.
	assert.False(t, destroyConfirmed(" destroy-staging\n", "staging"))
	assert.True(t, destroyConfirmed("destroy-staging\r\n", "staging"))
}

func TestPromptDestroyReadsPhrase(t *testing.T) {
	ok, err := promptDestroy(strings.NewReader("destroy-development\n"), "development")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = promptDestroy(strings.NewReader("nope\n"), "development")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPromptDeployDefaultsToNo(t *testing.T) {
	ok, err := promptDeploy(strings.NewReader("\n"), "development")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = promptDeploy(strings.NewReader("y\n"), "development")
	assert.NoError(t, err)
	assert.True(t, ok)
}
