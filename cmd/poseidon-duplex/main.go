// Command poseidon-duplex is a small demo driver for the duplex sponge:
// it reads one request line from stdin, a JSON object describing a
// parameter set, the elements to absorb and the number of elements to
// squeeze; it absorbs once, squeezes once, and writes the resulting
// digest as JSON to stdout.
//
// Input format, a single JSON object on the first line:
//
//	{"field":"goldilocks","rate":8,"capacity":4,"alpha":7,"full_rounds":8,"partial_rounds":22,"absorb":[1,2,3],"squeeze":4}
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/absorb"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field/blsfr"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field/goldilocks"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/paramgen"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/sponge"
)

// request is the on-the-wire shape of one line of stdin input.
type request struct {
	Field         string   `json:"field"` // "goldilocks" or "bls12-381"
	Rate          int      `json:"rate"`
	Capacity      int      `json:"capacity"`
	Alpha         uint64   `json:"alpha"`
	FullRounds    int      `json:"full_rounds"`
	PartialRounds int      `json:"partial_rounds"`
	Absorb        []uint64 `json:"absorb"`
	Squeeze       int      `json:"squeeze"`
}

type response struct {
	Digest []string `json:"digest"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fatal("failed to read request")
	}

	var req request
	if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
		fatal(fmt.Sprintf("failed to parse request: %v", err))
	}

	native, err := nativeZero(req.Field)
	if err != nil {
		fatal(err.Error())
	}

	logStderr(fmt.Sprintf("generating parameters: field=%s rate=%d capacity=%d alpha=%d full_rounds=%d partial_rounds=%d",
		req.Field, req.Rate, req.Capacity, req.Alpha, req.FullRounds, req.PartialRounds))

	p, err := paramgen.Generate(native, req.FullRounds, req.PartialRounds, req.Alpha, req.Rate, req.Capacity)
	if err != nil {
		fatal(fmt.Sprintf("failed to generate parameters: %v", err))
	}

	elements := make(absorb.Elements, len(req.Absorb))
	for i, v := range req.Absorb {
		elements[i] = native.FromBigInt(new(big.Int).SetUint64(v))
	}

	logStderr(fmt.Sprintf("absorbing %d elements", len(elements)))
	s := sponge.New(p)
	s.Absorb(elements)

	logStderr(fmt.Sprintf("squeezing %d elements", req.Squeeze))
	out := s.SqueezeNativeFieldElements(req.Squeeze)

	digest := make([]string, len(out))
	for i, e := range out {
		digest[i] = e.String()
	}

	respBytes, err := json.Marshal(response{Digest: digest})
	if err != nil {
		fatal(fmt.Sprintf("failed to serialize response: %v", err))
	}
	os.Stdout.Write(respBytes)
	os.Stdout.Write([]byte("\n"))
}

func nativeZero(name string) (field.Element, error) {
	switch name {
	case "goldilocks":
		return goldilocks.New(0), nil
	case "bls12-381":
		return blsfr.New(0), nil
	default:
		return nil, fmt.Errorf("unknown field %q, want \"goldilocks\" or \"bls12-381\"", name)
	}
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "poseidon-duplex:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
