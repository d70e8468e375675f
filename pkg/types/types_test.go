package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"POSITIVE", CategoryPositive},
		{"positive", CategoryPositive},
		{"Pos", CategoryPositive},
		{"NEG", CategoryNegative},
		{"negative", CategoryNegative},
		{"neu", CategoryNeutral},
		{" NEUTRAL ", CategoryNeutral},
		{"LABEL_2", CategoryUnknown},
		{"5 stars", CategoryUnknown},
		{"unknown", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.label))
		})
	}
}

func TestNewChunk(t *testing.T) {
	c := NewChunk(2, 1, []string{"Great", "news", "today", "."})

	assert.Equal(t, "Great news today .", c.Text)
	assert.Equal(t, 4, c.WordCount())
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, 1, c.Sentence)
	assert.NoError(t, c.Validate())
}

func TestChunkValidate(t *testing.T) {
	assert.ErrorIs(t, Chunk{}.Validate(), ErrEmptyContent)
	assert.ErrorIs(t, Chunk{Text: "x", Index: -1}.Validate(), ErrInvalidChunkIndex)
}

func TestSentimentResultValidate(t *testing.T) {
	assert.NoError(t, SentimentResult{Label: "POS", Score: 0}.Validate())
	assert.NoError(t, SentimentResult{Label: "POS", Score: 1}.Validate())
	assert.ErrorIs(t, SentimentResult{Label: "POS", Score: 1.2}.Validate(), ErrInvalidScore)
	assert.ErrorIs(t, SentimentResult{Label: "POS", Score: -0.1}.Validate(), ErrInvalidScore)
}

func TestZip(t *testing.T) {
	chunks := []Chunk{
		NewChunk(0, 0, []string{"a"}),
		NewChunk(1, 0, []string{"b"}),
	}

	t.Run("aligned", func(t *testing.T) {
		results := []SentimentResult{{Label: "POS", Score: 0.9}, {Label: "NEG", Score: 0.4}}
		segments, err := Zip(chunks, results)
		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, "b", segments[1].Chunk.Text)
		assert.Equal(t, "NEG", segments[1].Result.Label)
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := Zip(chunks, []SentimentResult{{Label: "POS", Score: 0.9}})
		assert.ErrorIs(t, err, ErrCardinalityMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		segments, err := Zip(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, segments)
	})
}

func TestDistribution(t *testing.T) {
	segments := []Segment{
		{Result: SentimentResult{Label: "POS"}},
		{Result: SentimentResult{Label: "positive"}},
		{Result: SentimentResult{Label: "NEG"}},
		{Result: SentimentResult{Label: "other"}},
	}

	counts := Distribution(segments)
	assert.Equal(t, 2, counts[CategoryPositive])
	assert.Equal(t, 1, counts[CategoryNegative])
	assert.Equal(t, 0, counts[CategoryNeutral])
	assert.Equal(t, 1, counts[CategoryUnknown])
}
