// Package tally reduces a sequence of per-round response categories to a
// single quiz outcome by simple majority.
package tally

// Result carries the resolved outcome plus the bookkeeping the caller
// logs at the end of a session.
type Result struct {
	Winner string
	Tie    bool
	Counts map[string]int
	Order  []string // categories in first-seen order
}

// Resolve counts category frequencies in first-seen order and returns the
// first category to reach the running maximum. A later category that only
// equals the current maximum never displaces the holder. When every
// distinct category ends with an identical count and there is more than
// one of them, the outcome is a tie and Winner is empty; the caller
// substitutes its configured default.
func Resolve(responses []string) Result {
	res := Result{Counts: map[string]int{}}
	highest := 0
	for _, cat := range responses {
		if res.Counts[cat] == 0 {
			res.Order = append(res.Order, cat)
		}
		res.Counts[cat]++
		if res.Counts[cat] > highest {
			highest = res.Counts[cat]
			res.Winner = cat
		}
	}
	if len(res.Order) > 1 {
		allEqual := true
		for _, cat := range res.Order {
			if res.Counts[cat] != highest {
				allEqual = false
				break
			}
		}
		if allEqual {
			res.Tie = true
			res.Winner = ""
		}
	}
	return res
}
