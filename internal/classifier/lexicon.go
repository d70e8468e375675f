package classifier

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/dshills/tonetint/pkg/types"
)

const (
	// neutralBand is the compound score range treated as neutral
	neutralBand = 0.05

	// normalizationAlpha approximates the max expected valence sum
	normalizationAlpha = 15.0

	negationScalar = -0.74
	boosterScalar  = 0.293
	negationWindow = 3
)

// valence holds word polarity on a -4..4 scale
var valence = map[string]float64{
	"good": 1.9, "great": 3.1, "excellent": 2.7, "amazing": 2.8, "wonderful": 2.7,
	"fantastic": 2.6, "love": 3.2, "loved": 2.9, "lovely": 2.8, "happy": 2.7,
	"joy": 2.8, "enjoy": 2.2, "enjoying": 2.4, "nice": 1.8, "best": 3.2,
	"beautiful": 2.9, "bright": 1.9, "calm": 1.3, "fun": 2.3, "glad": 2.0,
	"pleasant": 2.3, "perfect": 2.7, "win": 2.8, "success": 2.7, "hope": 1.9,
	"vibrancy": 1.6, "vibrant": 1.9, "relaxation": 1.9, "relaxing": 2.2, "rich": 1.9,
	"fresh": 1.3, "freshly": 1.2, "iconic": 1.0, "leisurely": 1.1, "upbeat": 1.9,
	"thanks": 1.9, "thank": 1.5, "like": 1.5, "awesome": 3.1, "brilliant": 2.8,
	"bad": -2.5, "terrible": -2.1, "awful": -2.0, "horrible": -2.5, "hate": -2.7,
	"hated": -3.2, "sad": -2.1, "angry": -2.3, "worst": -3.1, "poor": -2.1,
	"pain": -2.3, "painful": -2.4, "fail": -2.5, "failed": -2.3, "failure": -2.3,
	"wrong": -2.1, "ugly": -2.3, "boring": -1.3, "disappointed": -1.9, "disappointing": -2.2,
	"fear": -2.2, "afraid": -2.0, "hurt": -2.4, "lost": -1.3, "lose": -1.7,
	"problem": -1.7, "crisis": -3.1, "war": -2.9, "death": -2.9, "sick": -2.3,
	"hurried": -0.4, "nostalgia": 0.5, "lazy": -1.1, "slow": -0.6, "crisp": 0.6,
}

// boosters scale the intensity of the word that follows them
var boosters = map[string]float64{
	"very": boosterScalar, "really": boosterScalar, "extremely": boosterScalar,
	"so": boosterScalar, "incredibly": boosterScalar, "absolutely": boosterScalar,
	"slightly": -boosterScalar, "somewhat": -boosterScalar, "barely": -boosterScalar,
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "n't": {}, "nothing": {}, "nobody": {},
	"none": {}, "neither": {}, "nor": {}, "without": {}, "cannot": {},
	"don't": {}, "doesn't": {}, "didn't": {}, "isn't": {}, "wasn't": {},
	"can't": {}, "won't": {}, "aren't": {}, "weren't": {},
}

// LexiconProvider implements Model offline with a small valence lexicon,
// negation handling and intensity boosters
type LexiconProvider struct {
	model string
}

// NewLexiconProvider creates the offline classifier
func NewLexiconProvider() *LexiconProvider {
	return &LexiconProvider{model: DefaultLexiconModel}
}

func (l *LexiconProvider) Classify(ctx context.Context, texts []string) ([]types.SentimentResult, error) {
	if err := ValidateBatch(texts); err != nil {
		return nil, err
	}

	results := make([]types.SentimentResult, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results[i] = classifyCompound(Compound(text))
	}
	return results, nil
}

// Compound returns the normalized polarity of text in [-1, 1]
func Compound(text string) float64 {
	words := lexiconWords(text)

	var sum float64
	for i, w := range words {
		v, ok := valence[w]
		if !ok {
			continue
		}

		if i > 0 {
			if b, ok := boosters[words[i-1]]; ok {
				if v > 0 {
					v += b
				} else {
					v -= b
				}
			}
		}

		for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
			if _, ok := negators[words[j]]; ok {
				v *= negationScalar
				break
			}
		}

		sum += v
	}

	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}

// classifyCompound maps a compound score to a label with a confidence in [0.5, 1]
func classifyCompound(c float64) types.SentimentResult {
	switch {
	case c >= neutralBand:
		return types.SentimentResult{Label: "POS", Score: 0.5 + c/2}
	case c <= -neutralBand:
		return types.SentimentResult{Label: "NEG", Score: 0.5 - c/2}
	default:
		return types.SentimentResult{Label: "NEU", Score: 1 - math.Abs(c)/neutralBand*0.5}
	}
}

// lexiconWords lower-cases text and splits it on anything but letters and
// apostrophes
func lexiconWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '’'
	})
}

func (l *LexiconProvider) Provider() string {
	return ProviderLexicon
}

func (l *LexiconProvider) Model() string {
	return l.model
}

func (l *LexiconProvider) Close() error {
	return nil
}
