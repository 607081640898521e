package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains run data to visualize on the diagram.
type GraphOverlay struct {
	VisitedStates []domain.StateID
	CurrentState  domain.StateID
}

// OverlayFromResult builds an overlay from a run trace.
func OverlayFromResult(res *domain.Result) *GraphOverlay {
	overlay := &GraphOverlay{CurrentState: res.FinalState}
	for _, t := range res.Transitions {
		overlay.VisitedStates = append(overlay.VisitedStates, t.State)
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the transition table.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Accepting state: (((Double circle)))
// - Unreachable states (no incoming or outgoing rule): dashed rectangle
// - Default: [Rectangle]
// Edges are labelled "read/write,move". Overlay styles mark visited and current states.
func GenerateMermaid(states []domain.StateID, rules []domain.Rule, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	used := make(map[domain.StateID]bool)
	for _, r := range rules {
		used[r.From] = true
		used[r.To] = true
	}

	var unreachable []domain.StateID
	for _, s := range states {
		opener, closer := "[", "]"
		switch {
		case s == domain.StateInitial:
			opener, closer = "((", "))"
		case s.Terminal():
			opener, closer = "(((", ")))"
		case !used[s]:
			unreachable = append(unreachable, s)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", s, opener, s, closer))
	}

	for _, r := range rules {
		label := fmt.Sprintf("%s/%s,%s", r.Read, r.Write, r.Move)
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", r.From, label, r.To))
	}

	if len(unreachable) > 0 {
		sb.WriteString("    classDef unreachable stroke-dasharray: 5 5,color:#999;\n")
		for _, s := range unreachable {
			sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", s))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.StateID]bool)
		for _, s := range overlay.VisitedStates {
			if !seen[s] && s != "" && s != overlay.CurrentState {
				seen[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", s))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", overlay.CurrentState))
		}
	}

	return sb.String()
}
