package arena

import "testing"

func TestBoardText(t *testing.T) {
	st := newTestState(t, Size{4, 2}, 1,
		[]Spawn{{RoleQueen, Point{0, 0}}, {RoleWarrior, Point{1, 1}}},
		[]Spawn{{RoleWarrior, Point{3, 0}}, {RoleQueen, Point{3, 1}}})
	want := "Q..w\n.W.q\n"
	if got := BoardText(st); got != want {
		t.Fatalf("BoardText =\n%s\nwant\n%s", got, want)
	}
	if BoardText(nil) != "" {
		t.Fatal("nil view should render empty")
	}
}
