package paramgen

import (
	"testing"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field/blsfr"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field/goldilocks"
)

func TestGenerateGoldilocksShape(t *testing.T) {
	p, err := Generate(goldilocks.New(0), 8, 22, 7, 8, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Width() != 12 {
		t.Fatalf("width = %d, want 12", p.Width())
	}
	if len(p.Ark) != 30 {
		t.Fatalf("ark rows = %d, want 30", len(p.Ark))
	}
	if len(p.Mds) != 12 || len(p.Mds[0]) != 12 {
		t.Fatalf("mds shape wrong: %dx%d", len(p.Mds), len(p.Mds[0]))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p1, err := Generate(goldilocks.New(0), 8, 22, 7, 8, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	p2, err := Generate(goldilocks.New(0), 8, 22, 7, 8, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for r := range p1.Ark {
		for c := range p1.Ark[r] {
			if !p1.Ark[r][c].Equal(p2.Ark[r][c]) {
				t.Fatalf("ark[%d][%d] differs between runs", r, c)
			}
		}
	}
	for i := range p1.Mds {
		for j := range p1.Mds[i] {
			if !p1.Mds[i][j].Equal(p2.Mds[i][j]) {
				t.Fatalf("mds[%d][%d] differs between runs", i, j)
			}
		}
	}
}

func TestGenerateBLS12381Rate2Shape(t *testing.T) {
	// The shape of arkworks' PARAMS_OPT_FOR_CONSTRAINTS width-3 entry:
	// rate 2, capacity 1, alpha 17, 8 full rounds, 31 partial rounds.
	p, err := Generate(blsfr.New(0), 8, 31, 17, 2, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Rate != 2 || p.Capacity != 1 || p.Alpha != 17 {
		t.Fatalf("got rate=%d capacity=%d alpha=%d, want rate=2 capacity=1 alpha=17", p.Rate, p.Capacity, p.Alpha)
	}
	if p.FullRounds != 8 || p.PartialRounds != 31 {
		t.Fatalf("got full=%d partial=%d, want full=8 partial=31", p.FullRounds, p.PartialRounds)
	}
}

func TestGenerateProducesDistinctMatrixEntries(t *testing.T) {
	p, err := Generate(goldilocks.New(0), 8, 22, 7, 8, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Mds[0][0].Equal(p.Mds[0][1]) {
		t.Fatalf("adjacent Cauchy MDS entries collided, matrix is degenerate")
	}
}
