// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package tracetree restructures the span trees of one traces payload after
// filtering: spans whose names match the filter rules are removed, and their
// descendants are either reparented to the nearest surviving ancestor or
// pruned along with them.
package tracetree // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/tracetree"

import (
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

// Stats summarizes what one reconciliation did to a payload.
type Stats struct {
	// Filtered is the number of spans removed because their own name matched
	// a filter rule.
	Filtered int64
	// Pruned is the number of non-matching spans removed because a local
	// ancestor matched. Only possible when reparenting is disabled.
	Pruned int64
	// Reparented is the number of surviving spans whose parent reference was
	// rewritten to skip over removed ancestors.
	Reparented int64
}

// Reconciler applies one filter configuration to traces payloads. It holds no
// per-payload state, so a single Reconciler may process payloads concurrently.
type Reconciler struct {
	matches  func(name string) bool
	reparent bool
}

// New returns a Reconciler that classifies spans with matches. With reparent
// enabled, children of removed spans are attached to their nearest surviving
// ancestor; disabled, whole subtrees below a removed span are pruned.
func New(matches func(name string) bool, reparent bool) *Reconciler {
	return &Reconciler{matches: matches, reparent: reparent}
}

type node struct {
	parent  pcommon.SpanID
	matched bool
}

// Reconcile mutates td in place and returns what it removed and rewrote.
// Parent references may cross resource and scope boundaries within the
// payload; references to spans outside the payload are left untouched and
// their targets assumed kept. The relative order of surviving spans is
// preserved.
func (r *Reconciler) Reconcile(td ptrace.Traces) Stats {
	index := make(map[pcommon.SpanID]node)
	anyMatched := false
	forEachSpan(td, func(s ptrace.Span) {
		matched := r.matches(s.Name())
		anyMatched = anyMatched || matched
		index[s.SpanID()] = node{parent: s.ParentSpanID(), matched: matched}
	})
	if !anyMatched {
		// Nothing to remove; leave the payload byte-for-byte as it arrived.
		return Stats{}
	}

	var stats Stats
	if !r.reparent {
		memo := make(map[pcommon.SpanID]bool, len(index))
		removeSpans(td, func(s ptrace.Span) bool {
			id := s.SpanID()
			if !dropTransitively(index, memo, id) {
				return false
			}
			if index[id].matched {
				stats.Filtered++
			} else {
				stats.Pruned++
			}
			return true
		})
		return stats
	}

	forEachSpan(td, func(s ptrace.Span) {
		if index[s.SpanID()].matched {
			// Removed below; no point rewriting its parent.
			return
		}
		parentID := s.ParentSpanID()
		if parentID.IsEmpty() {
			return
		}
		parent, local := index[parentID]
		if !local || !parent.matched {
			return
		}
		s.SetParentSpanID(resolveAncestor(index, s.SpanID()))
		stats.Reparented++
	})
	removeSpans(td, func(s ptrace.Span) bool {
		if index[s.SpanID()].matched {
			stats.Filtered++
			return true
		}
		return false
	})
	return stats
}

// resolveAncestor walks up from id until it reaches a span that survives
// filtering, a reference outside the payload (assumed kept), or the top of
// the tree. Revisiting a span means the parent chain is cyclic; the walk
// stops and the span becomes a new root rather than looping forever.
func resolveAncestor(index map[pcommon.SpanID]node, id pcommon.SpanID) pcommon.SpanID {
	visited := map[pcommon.SpanID]struct{}{id: {}}
	current := index[id].parent
	for !current.IsEmpty() {
		if _, seen := visited[current]; seen {
			return pcommon.NewSpanIDEmpty()
		}
		visited[current] = struct{}{}
		n, local := index[current]
		if !local || !n.matched {
			return current
		}
		current = n.parent
	}
	return pcommon.NewSpanIDEmpty()
}

// dropTransitively reports whether the span or any local ancestor matched a
// filter rule. The verdict is memoized for every span visited on the chain.
// Ancestors outside the payload are assumed kept, and a cyclic chain with no
// match on it keeps its spans.
func dropTransitively(index map[pcommon.SpanID]node, memo map[pcommon.SpanID]bool, id pcommon.SpanID) bool {
	if drop, done := memo[id]; done {
		return drop
	}
	var chain []pcommon.SpanID
	visited := make(map[pcommon.SpanID]struct{})
	current := id
	drop := false
	for {
		if d, done := memo[current]; done {
			drop = d
			break
		}
		if _, seen := visited[current]; seen {
			break
		}
		visited[current] = struct{}{}
		n, local := index[current]
		if !local {
			break
		}
		chain = append(chain, current)
		if n.matched {
			drop = true
			break
		}
		if n.parent.IsEmpty() {
			break
		}
		current = n.parent
	}
	for _, cid := range chain {
		memo[cid] = drop
	}
	return drop
}

func forEachSpan(td ptrace.Traces, f func(ptrace.Span)) {
	rss := td.ResourceSpans()
	for i := 0; i < rss.Len(); i++ {
		sss := rss.At(i).ScopeSpans()
		for j := 0; j < sss.Len(); j++ {
			spans := sss.At(j).Spans()
			for k := 0; k < spans.Len(); k++ {
				f(spans.At(k))
			}
		}
	}
}

// removeSpans removes matching spans in place and drops scope and resource
// entries left without spans. RemoveIf keeps the survivors in their original
// relative order.
func removeSpans(td ptrace.Traces, drop func(ptrace.Span) bool) {
	td.ResourceSpans().RemoveIf(func(rs ptrace.ResourceSpans) bool {
		rs.ScopeSpans().RemoveIf(func(ss ptrace.ScopeSpans) bool {
			ss.Spans().RemoveIf(drop)
			return ss.Spans().Len() == 0
		})
		return rs.ScopeSpans().Len() == 0
	})
}
