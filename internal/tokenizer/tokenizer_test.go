package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	tok := New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "  \n\t ", []string{}},
		{"single sentence", "Great news today.", []string{"Great news today."}},
		{"no terminator", "just some words", []string{"just some words"}},
		{
			"mixed terminators",
			"Great news today! Is it true? Yes.",
			[]string{"Great news today!", "Is it true?", "Yes."},
		},
		{
			"abbreviation",
			"Dr. Smith arrived late. He apologised.",
			[]string{"Dr. Smith arrived late.", "He apologised."},
		},
		{
			"initials",
			"J. R. R. Tolkien wrote it. Readers loved it.",
			[]string{"J. R. R. Tolkien wrote it.", "Readers loved it."},
		},
		{
			"decimal",
			"It costs 3.50 today. Cheap.",
			[]string{"It costs 3.50 today.", "Cheap."},
		},
		{
			"closing quote",
			`She said "wonderful." Then she left.`,
			[]string{`She said "wonderful."`, "Then she left."},
		},
		{
			"abbreviation before lower case",
			"The value was approx. ten. Fine.",
			[]string{"The value was approx. ten.", "Fine."},
		},
		{
			"lower case after ordinary word",
			"It was great. then it broke.",
			[]string{"It was great.", "then it broke."},
		},
		{
			"lower case then abbreviation",
			"It was great. then it broke. I wrote to Dr. Smith.",
			[]string{"It was great.", "then it broke.", "I wrote to Dr. Smith."},
		},
		{
			"ellipsis continues in lower case",
			"Well... maybe it works. Sure.",
			[]string{"Well... maybe it works.", "Sure."},
		},
		{
			"ellipsis before capital",
			"I waited... Nothing happened.",
			[]string{"I waited...", "Nothing happened."},
		},
		{
			"newlines",
			"First line here.\nSecond line here.",
			[]string{"First line here.", "Second line here."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Sentences(tt.text))
		})
	}
}

func TestWords(t *testing.T) {
	tok := New()

	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"empty", "", []string{}},
		{"final period", "Great news today.", []string{"Great", "news", "today", "."}},
		{"commas", "soft, lazy energy", []string{"soft", ",", "lazy", "energy"}},
		{"contraction", "there's a pulse", []string{"there", "'s", "a", "pulse"}},
		{"negation", "I don't know", []string{"I", "do", "n't", "know"}},
		{"curly apostrophe", "there’s hope", []string{"there", "'s", "hope"}},
		{"abbreviation kept", "Mr. Brown smiled.", []string{"Mr.", "Brown", "smiled", "."}},
		{"quotes", `"Hello," she said.`, []string{`"`, "Hello", ",", `"`, "she", "said", "."}},
		{"ellipsis", "Well... maybe", []string{"Well", "...", "maybe"}},
		{"exclamations", "Wow!!", []string{"Wow", "!", "!"}},
		{"hyphen kept", "well-known place", []string{"well-known", "place"}},
		{"dash alone", "calm — street", []string{"calm", "—", "street"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Words(tt.sentence))
		})
	}
}

func TestNewExtraAbbreviations(t *testing.T) {
	tok := New("Approx.", "Capt")
	assert.Equal(t, []string{"Capt. Hook sailed."}, tok.Sentences("Capt. Hook sailed."))
}

func TestFuncs(t *testing.T) {
	tok := Funcs{
		SentenceFunc: func(text string) []string { return strings.Split(text, "|") },
		WordFunc:     strings.Fields,
	}

	assert.Equal(t, []string{"a b", "c"}, tok.Sentences("a b|c"))
	assert.Equal(t, []string{"a", "b"}, tok.Words("a b"))
}
