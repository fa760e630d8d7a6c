// Package checklist implements the keyword-driven conversation checklists used
// to grade role-play training sessions. One generic scanner serves every
// checklist; the checklists themselves are data defined in dictionaries.go.
package checklist

import (
	"math"
	"strings"
)

// Role tags a conversation turn with its speaker.
type Role string

const (
	// RoleUser is the trainee, i.e. the salesperson.
	RoleUser Role = "user"
	// RoleAssistant is the simulated customer.
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a role-play conversation. The sequence of turns
// is append-only during a session.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Category groups related checklist items for presentation.
type Category string

// Item is a single checklist entry. Items are immutable and defined at load
// time. An item with no keywords is a manual-only marker that the scanner
// never completes.
type Item struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Keywords    []string `json:"keywords"`
}

// State maps item ID to completion. Completion is monotonic: Scan never resets
// a true flag. The caller owns the state and re-invokes Scan on every appended
// turn; resetting between sessions is the caller's concern.
type State map[string]bool

// Scan marks items complete whose keywords appear in the conversation so far.
//
// All user-role content and all assistant-role content are lowercased and
// concatenated, salesperson text first. An incomplete item with a non-empty
// keyword list becomes complete iff any keyword is a substring of the combined
// text. Scan is pure and idempotent; it returns a fresh state and leaves prior
// untouched.
func Scan(turns []Turn, prior State, dictionary []Item) State {
	var userParts, assistantParts []string
	for _, turn := range turns {
		switch turn.Role {
		case RoleUser:
			userParts = append(userParts, strings.ToLower(turn.Content))
		case RoleAssistant:
			assistantParts = append(assistantParts, strings.ToLower(turn.Content))
		}
	}
	combined := strings.Join(userParts, " ") + " " + strings.Join(assistantParts, " ")

	state := make(State, len(dictionary))
	for id, done := range prior {
		state[id] = done
	}
	for _, item := range dictionary {
		if state[item.ID] || len(item.Keywords) == 0 {
			continue
		}
		for _, keyword := range item.Keywords {
			if strings.Contains(combined, strings.ToLower(keyword)) {
				state[item.ID] = true
				break
			}
		}
	}
	return state
}

// Progress returns the completion percentage of state over dictionary, rounded
// to the nearest integer. An empty dictionary yields 0 rather than dividing by
// zero.
func Progress(state State, dictionary []Item) int {
	if len(dictionary) == 0 {
		return 0
	}
	completed := 0
	for _, item := range dictionary {
		if state[item.ID] {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(dictionary))))
}

// ByCategory groups dictionary items by category preserving dictionary order
// within each group and the order of first appearance between groups.
func ByCategory(dictionary []Item) ([]Category, map[Category][]Item) {
	var order []Category
	groups := make(map[Category][]Item)
	for _, item := range dictionary {
		if _, ok := groups[item.Category]; !ok {
			order = append(order, item.Category)
		}
		groups[item.Category] = append(groups[item.Category], item)
	}
	return order, groups
}
