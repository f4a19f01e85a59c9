// Package reason computes deterministic, human-readable explanations for why
// two employees match, and the structured overlap facts behind them. It never
// calls an external provider; its output doubles as the fallback when
// LLM-generated match content is unavailable or rejected.
package reason
