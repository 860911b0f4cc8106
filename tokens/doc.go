// Package tokens estimates context windows and token counts.
//
// # Context Windows
//
// GetContextWindow matches a model identifier against an ordered table of
// name fragments. It is a hardcoded heuristic for known model families,
// not something read from the routing configuration:
//
//	tokens.GetContextWindow("gpt-4o-mini")    // 128000
//	tokens.GetContextWindow("gemini-1.5-pro") // 1000000
//	tokens.GetContextWindow("claude-3")       // 8000 (default)
//
// # Estimation
//
// Token counts use the rule of thumb that about 4 characters make a token:
//
//	n := tokens.EstimateTokens("Hello, world!")              // ~3
//	ok := tokens.FitsContextWindow("llama-3.1-8b", document)
package tokens
