package engine

import (
	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/piyushtamaskar21/collab-connect/match"
)

// Monitor provides hooks to observe the matching process.
// Implement this interface to track route decisions and scoring stages.
type Monitor interface {
	Start(query string)
	AfterRoute(mode match.Mode)
	AfterNameRanking(results []core.MatchResult)
	AfterSemanticScoring(scored int)
	AfterHybridScoring(results []core.MatchResult)
	Finish(results []core.MatchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterRoute(_ match.Mode)                 {}
func (n *noopMonitor) AfterNameRanking(_ []core.MatchResult)   {}
func (n *noopMonitor) AfterSemanticScoring(_ int)              {}
func (n *noopMonitor) AfterHybridScoring(_ []core.MatchResult) {}
func (n *noopMonitor) Finish(_ []core.MatchResult)             {}
