package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/jumppath/gridgraph"
)

// TestReconstruct covers unreached goals, the trivial start==goal case,
// missing links, broken chains, and a regular chain.
func TestReconstruct(t *testing.T) {
	a := gridgraph.Pos{Row: 0, Col: 0}
	b := gridgraph.Pos{Row: 0, Col: 1}
	c := gridgraph.Pos{Row: 1, Col: 1}
	d := gridgraph.Pos{Row: 2, Col: 2}

	cases := []struct {
		name    string
		parent  map[gridgraph.Pos]gridgraph.Pos
		goal    gridgraph.Pos
		reached bool
		want    gridgraph.Path
	}{
		{"NotReached", map[gridgraph.Pos]gridgraph.Pos{b: a}, b, false, nil},
		{"StartIsGoal", map[gridgraph.Pos]gridgraph.Pos{}, a, true, gridgraph.Path{a}},
		{"GoalWithoutParent", map[gridgraph.Pos]gridgraph.Pos{b: a}, c, true, nil},
		{"Chain", map[gridgraph.Pos]gridgraph.Pos{b: a, c: b}, c, true, gridgraph.Path{a, b, c}},
		{"BrokenChain", map[gridgraph.Pos]gridgraph.Pos{c: b}, c, true, nil},
		{"Cycle", map[gridgraph.Pos]gridgraph.Pos{b: c, c: b, d: c}, d, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gridgraph.Reconstruct(tc.parent, a, tc.goal, tc.reached)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Reconstruct = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestPath_JumpsAndString(t *testing.T) {
	var none gridgraph.Path
	if none.Jumps() != 0 || none.String() != "None" {
		t.Errorf("absent path: Jumps=%d String=%q", none.Jumps(), none.String())
	}
	p := gridgraph.Path{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 2}}
	if p.Jumps() != 2 {
		t.Errorf("Jumps = %d; want 2", p.Jumps())
	}
	if want := "[(0, 0), (0, 2), (2, 2)]"; p.String() != want {
		t.Errorf("String = %q; want %q", p.String(), want)
	}
}

// TestValidatePath_AndCost checks validity errors and the three cost functions.
func TestValidatePath_AndCost(t *testing.T) {
	g := mustBuild(t, sample, gridgraph.Pos{}, gridgraph.Pos{Row: 2, Col: 2})
	// (0,0) -2-> (0,2) -2-> (2,2)
	p := gridgraph.Path{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 2}}
	if err := g.ValidatePath(p); err != nil {
		t.Fatalf("ValidatePath error: %v", err)
	}

	costs := []struct {
		name string
		fn   gridgraph.CostFunc
		want int
	}{
		{"Distance", gridgraph.CostDistance, 4},
		{"Jumps", gridgraph.CostJumps, 2},
		{"Value", gridgraph.CostValue, 2}, // value(0,2)=2 + value(2,2)=0
	}
	for _, tc := range costs {
		got, err := g.PathCost(p, tc.fn)
		if err != nil || got != tc.want {
			t.Errorf("PathCost(%s) = %d, %v; want %d", tc.name, got, err, tc.want)
		}
	}

	bad := []gridgraph.Path{
		nil,
		{{Row: 0, Col: 2}, {Row: 2, Col: 2}},                   // wrong start
		{{Row: 0, Col: 0}, {Row: 0, Col: 2}},                   // wrong end
		{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, // no edge (0,0)->(1,1)
	}
	for _, bp := range bad {
		if err := g.ValidatePath(bp); !errors.Is(err, gridgraph.ErrInvalidPath) {
			t.Errorf("ValidatePath(%v) = %v; want ErrInvalidPath", bp, err)
		}
		if _, err := g.PathCost(bp, gridgraph.CostJumps); !errors.Is(err, gridgraph.ErrInvalidPath) {
			t.Errorf("PathCost(%v) = %v; want ErrInvalidPath", bp, err)
		}
	}
}
