package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit", Config{Provider: "OpenAI", HuggingFaceToken: "hf"}, ProviderOpenAI},
		{"huggingface token", Config{HuggingFaceToken: "hf", OpenAIKey: "sk"}, ProviderHuggingFace},
		{"openai key", Config{OpenAIKey: "sk"}, ProviderOpenAI},
		{"offline fallback", Config{}, ProviderLexicon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectProvider(tt.cfg))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("lexicon", func(t *testing.T) {
		m, err := New(Config{Provider: ProviderLexicon})
		require.NoError(t, err)
		assert.Equal(t, ProviderLexicon, m.Provider())
	})

	t.Run("huggingface with cache", func(t *testing.T) {
		m, err := New(Config{HuggingFaceToken: "hf", Model: "org/model", CacheSize: 5})
		require.NoError(t, err)
		defer m.Close()

		hf, ok := m.(*HuggingFaceProvider)
		require.True(t, ok)
		assert.NotNil(t, hf.cache)
		assert.Equal(t, "org/model", hf.Model())
	})

	t.Run("openai", func(t *testing.T) {
		m, err := New(Config{Provider: ProviderOpenAI, OpenAIKey: "sk"})
		require.NoError(t, err)
		assert.Equal(t, DefaultOpenAIModel, m.Model())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(Config{Provider: "watson"})
		assert.ErrorIs(t, err, ErrUnsupportedProvider)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := New(Config{Provider: ProviderHuggingFace})
		assert.ErrorIs(t, err, ErrNoProviderEnabled)
	})
}

func TestProviders(t *testing.T) {
	assert.ElementsMatch(t, []string{"huggingface", "openai", "lexicon"}, Providers())
}
