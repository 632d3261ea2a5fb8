package llamaparse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llamaparse "github.com/janus-dev87/llama-parse"
)

func noEnv(string) string { return "" }

func TestNew_MissingAPIKey(t *testing.T) {
	client, err := llamaparse.New(llamaparse.Config{LookupEnv: noEnv})

	assert.Nil(t, client)
	assert.True(t, errors.Is(err, llamaparse.ErrMissingAPIKey))
}

func TestNew_APIKeyFromEnvironment(t *testing.T) {
	client, err := llamaparse.New(llamaparse.Config{
		LookupEnv: func(key string) string {
			if key == llamaparse.EnvAPIKey {
				return "env-key"
			}
			return ""
		},
	})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_ExplicitAPIKeyWinsOverEnvironment(t *testing.T) {
	// The explicit key is used verbatim; the env fallback only applies when
	// the configured key is empty. Construction must succeed either way.
	client, err := llamaparse.New(llamaparse.Config{
		APIKey:    "explicit-key",
		LookupEnv: func(string) string { return "env-key" },
	})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_InvalidResultType(t *testing.T) {
	client, err := llamaparse.New(llamaparse.Config{
		APIKey:     "k",
		ResultType: "yaml",
		LookupEnv:  noEnv,
	})

	assert.Nil(t, client)
	assert.True(t, errors.Is(err, llamaparse.ErrInvalidResultType))
	assert.Contains(t, err.Error(), "yaml")
}

func TestNew_Defaults(t *testing.T) {
	client, err := llamaparse.New(llamaparse.Config{APIKey: "k", LookupEnv: noEnv})

	require.NoError(t, err)
	assert.NotNil(t, client)
}
