package domain

import (
	"fmt"
	"strings"
)

// Priority is the study tier assigned to a concept.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the sort position of a priority (lower = studied first).
// Unknown values sort with Medium, matching how unlabeled work is treated.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Tier returns the human-facing tier name for a priority.
func (p Priority) Tier() string {
	switch p {
	case PriorityHigh:
		return "Core"
	case PriorityLow:
		return "Example"
	default:
		return "Supporting"
	}
}

// ParsePriority accepts any casing of High, Medium or Low.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority %q (expected High, Medium or Low)", s)
}

// NodeKind distinguishes the three layers of a mind map.
type NodeKind string

const (
	NodeRoot    NodeKind = "root"
	NodeTopic   NodeKind = "topic"
	NodeConcept NodeKind = "concept"
)
