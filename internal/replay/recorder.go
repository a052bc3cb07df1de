// Package replay implements the ground-truth logging Tapu Simu needs both
// as a standalone simulator and as the expansion oracle for search-based
// agents: a pure recorder that appends each turn's branch
// list to a JSON-Lines log, compressed with zstd. It never feeds back into
// turn generation — recording is a side effect a caller opts into, not a
// hidden piece of engine state.
package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/klauspost/compress/zstd"

	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/turnengine"
)

// InstructionRecord is one logged instruction: a reflection-derived type
// name plus its marshaled fields. The recorder doesn't need to understand
// any instruction's semantics, only tag and serialize it, so a type switch
// over all twenty-some instruction.Instruction implementations would add
// maintenance burden (every new instruction type would need a matching
// case here) for no benefit a log consumer can't get from the Go type name
// itself.
type InstructionRecord struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// BranchRecord is one logged branch: its probability and the instruction
// list that realizes it list").
type BranchRecord struct {
	Probability  float64             `json:"probability"`
	Instructions []InstructionRecord `json:"instructions"`
}

// TurnRecord is one logged turn: the turn number plus every branch
// GenerateTurn produced for it.
type TurnRecord struct {
	Turn     int            `json:"turn"`
	Branches []BranchRecord `json:"branches"`
}

// Recorder writes TurnRecords as JSON-Lines to an underlying zstd stream.
// Not safe for concurrent use by multiple goroutines against the same
// Recorder; independent battles should each own one.
type Recorder struct {
	zw  *zstd.Encoder
	enc *json.Encoder
}

// NewRecorder wraps w in a zstd encoder and prepares JSON-Lines output.
// Call Close when done to flush the compressed frame.
func NewRecorder(w io.Writer) (*Recorder, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("opening zstd writer: %w", err)
	}
	return &Recorder{zw: zw, enc: json.NewEncoder(zw)}, nil
}

// RecordTurn appends one turn's branch list as a single JSON line.
func (r *Recorder) RecordTurn(turn int, branches []turnengine.Branch) error {
	rec := TurnRecord{Turn: turn, Branches: make([]BranchRecord, 0, len(branches))}
	for _, b := range branches {
		br := BranchRecord{
			Probability:  b.Probability,
			Instructions: make([]InstructionRecord, 0, len(b.Instructions)),
		}
		for _, instr := range b.Instructions {
			ir, err := encodeInstruction(instr)
			if err != nil {
				return fmt.Errorf("turn %d: %w", turn, err)
			}
			br.Instructions = append(br.Instructions, ir)
		}
		rec.Branches = append(rec.Branches, br)
	}
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding turn %d: %w", turn, err)
	}
	return nil
}

func encodeInstruction(instr instruction.Instruction) (InstructionRecord, error) {
	data, err := json.Marshal(instr)
	if err != nil {
		return InstructionRecord{}, fmt.Errorf("marshaling %T: %w", instr, err)
	}
	t := reflect.TypeOf(instr)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return InstructionRecord{Kind: t.Name(), Data: data}, nil
}

// Close flushes and closes the zstd stream. The log is unreadable until
// Close returns successfully.
func (r *Recorder) Close() error {
	return r.zw.Close()
}
