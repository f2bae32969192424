package split

import (
	"fmt"
	"strconv"
)

// =============================================================================
// ITEMIZED SPLIT STRATEGY
// Each item is split among the participants assigned to it, optionally
// weighted by per-assignee quantities
// =============================================================================

// ItemizedStrategy implements the Strategy interface for itemized splits
type ItemizedStrategy struct{}

// Type returns the split type identifier
func (s *ItemizedStrategy) Type() SplitType {
	return SplitTypeItemized
}

// Validate checks that every receipt item is assigned to at least one person
// and that assigned quantities never exceed the item's own quantity.
func (s *ItemizedStrategy) Validate(receipt *Receipt, in *Input) []string {
	var problems []string

	for i, item := range receipt.Items {
		assignment, ok := findAssignment(in.Assignments, item, i)
		if !ok || len(assignment.FriendIDs) == 0 {
			problems = append(problems, fmt.Sprintf("%s is not assigned to anyone", itemName(item, i)))
			continue
		}

		if len(assignment.Quantities) == len(assignment.FriendIDs) && len(assignment.Quantities) > 0 {
			var assigned float64
			for _, q := range assignment.Quantities {
				assigned += q
			}
			if assigned > float64(item.Quantity)+1e-9 {
				problems = append(problems, fmt.Sprintf(
					"%s has %s assigned but only %d available",
					itemName(item, i), trimQuantity(assigned), item.Quantity))
			}
		}
	}

	return problems
}

// Shares splits each assigned item's total price among its assignees and
// accumulates per-participant sums. Assignments that match no item, or carry
// no assignees, are skipped silently; their value is simply excluded.
// The accumulated shares are reconciled against the total of the items that
// were actually matched, so nothing unassigned is invented.
func (s *ItemizedStrategy) Shares(receipt *Receipt, in *Input) map[string]float64 {
	shares := zeroShares(in.Participants)
	if len(shares) == 0 {
		return shares
	}

	var assignedTotal float64
	for _, assignment := range in.Assignments {
		item, _, ok := lookupItem(receipt.Items, assignment.ItemID)
		if !ok || len(assignment.FriendIDs) == 0 {
			continue
		}
		assignedTotal += item.TotalPrice

		if weighted(assignment) {
			var totalQuantity float64
			for _, q := range assignment.Quantities {
				totalQuantity += q
			}
			if totalQuantity > 0 {
				for i, friendID := range assignment.FriendIDs {
					shares[friendID] += item.TotalPrice * (assignment.Quantities[i] / totalQuantity)
				}
				continue
			}
		}

		// Even split among assignees
		perPerson := item.TotalPrice / float64(len(assignment.FriendIDs))
		for _, friendID := range assignment.FriendIDs {
			shares[friendID] += perPerson
		}
	}

	return RoundAmounts(shares, assignedTotal)
}

// weighted reports whether the assignment carries a usable quantity vector.
// A quantities slice that does not parallel the friend list is ignored.
func weighted(a ItemAssignment) bool {
	return len(a.Quantities) > 0 && len(a.Quantities) == len(a.FriendIDs)
}

// lookupItem finds a receipt item by its id, falling back to interpreting the
// assignment's itemId as a positional index for items without stable ids.
func lookupItem(items []Item, itemID string) (Item, int, bool) {
	for i, item := range items {
		if item.ID != "" && item.ID == itemID {
			return item, i, true
		}
	}
	if idx, err := strconv.Atoi(itemID); err == nil && idx >= 0 && idx < len(items) {
		return items[idx], idx, true
	}
	return Item{}, -1, false
}

// findAssignment locates the assignment covering the given item, matching by
// id first and positional index second.
func findAssignment(assignments []ItemAssignment, item Item, index int) (ItemAssignment, bool) {
	for _, a := range assignments {
		if item.ID != "" && a.ItemID == item.ID {
			return a, true
		}
		if a.ItemID == strconv.Itoa(index) {
			return a, true
		}
	}
	return ItemAssignment{}, false
}

// itemName returns a display name for validation messages, falling back to
// the item's 1-based position when the receipt parser produced no name.
func itemName(item Item, index int) string {
	if item.Name != "" {
		return item.Name
	}
	return fmt.Sprintf("item %d", index+1)
}

// trimQuantity formats an assigned quantity without trailing zeros.
func trimQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
