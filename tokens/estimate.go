package tokens

import "unicode/utf8"

// DefaultCharsPerToken approximates English text: about 4 characters per token.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCounter uses a character-to-token ratio.
type EstimatingCounter struct {
	CharsPerToken float64
}

// NewEstimatingCounter creates a counter with DefaultCharsPerToken.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{CharsPerToken: DefaultCharsPerToken}
}

// Count estimates tokens from the rune count, rounded to nearest.
// A non-positive ratio falls back to DefaultCharsPerToken.
func (c *EstimatingCounter) Count(text string) int {
	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}
	return int(float64(utf8.RuneCountInString(text))/ratio + 0.5)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimateTokens counts with the default estimator.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
