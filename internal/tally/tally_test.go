package tally

import "testing"

func TestResolveMajorityWins(t *testing.T) {
	res := Resolve([]string{"Fox", "Owl", "Fox", "Bear", "Fox"})
	if res.Tie {
		t.Fatalf("unexpected tie")
	}
	if res.Winner != "Fox" {
		t.Fatalf("winner = %q, want Fox", res.Winner)
	}
	if res.Counts["Fox"] != 3 || res.Counts["Owl"] != 1 || res.Counts["Bear"] != 1 {
		t.Fatalf("counts = %v", res.Counts)
	}
}

func TestResolveFirstToReachMaxHolds(t *testing.T) {
	// Owl equals Fox's count later but never exceeds it.
	res := Resolve([]string{"Fox", "Fox", "Owl", "Owl", "Bear"})
	if res.Tie {
		t.Fatalf("unexpected tie: three categories with unequal counts")
	}
	if res.Winner != "Fox" {
		t.Fatalf("winner = %q, want Fox", res.Winner)
	}
}

func TestResolveAllEqualIsTie(t *testing.T) {
	res := Resolve([]string{"Fox", "Owl", "Fox", "Owl"})
	if !res.Tie {
		t.Fatalf("expected tie")
	}
	if res.Winner != "" {
		t.Fatalf("tie must not name a winner, got %q", res.Winner)
	}
}

func TestResolveSingleCategoryIsNotTie(t *testing.T) {
	res := Resolve([]string{"Fox", "Fox"})
	if res.Tie {
		t.Fatalf("single category can never tie")
	}
	if res.Winner != "Fox" {
		t.Fatalf("winner = %q, want Fox", res.Winner)
	}
}

func TestResolveEmptyResponses(t *testing.T) {
	res := Resolve(nil)
	if res.Tie || res.Winner != "" {
		t.Fatalf("empty input should resolve to no winner and no tie, got %+v", res)
	}
}

func TestResolveOrderIsFirstSeen(t *testing.T) {
	res := Resolve([]string{"Owl", "Fox", "Owl", "Bear"})
	want := []string{"Owl", "Fox", "Bear"}
	if len(res.Order) != len(want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
	for i := range want {
		if res.Order[i] != want[i] {
			t.Fatalf("order = %v, want %v", res.Order, want)
		}
	}
}
