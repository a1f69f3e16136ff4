package cpu

import (
	"errors"

	"github.com/addictgamer/trisk/pkg/inst"
)

// ErrEmptyProgram is returned by NewStateFromImage when every byte of
// the image is 0x00 — pure NOPs forming an infinite loop that is
// refused rather than started.
var ErrEmptyProgram = errors.New("empty program")

// NewStateFromImage builds a fresh machine over img. It fails with
// ErrEmptyProgram if img is entirely zero.
func NewStateFromImage(img [MemorySize]byte) (*State, error) {
	if isAllZero(img) {
		return nil, ErrEmptyProgram
	}
	return &State{Memory: img, Running: true}, nil
}

func isAllZero(img [MemorySize]byte) bool {
	for _, b := range img {
		if b != 0 {
			return false
		}
	}
	return true
}

// Step fetches and executes exactly one instruction. HALT leaves PC
// untouched; taken branches (JMP and the conditional PC* family) jump
// without advancing; everything else advances PC by its own size.
func Step(s *State) {
	opcode := s.GetByte(s.PC)
	mnemonic, x, y := inst.Decode(opcode)

	switch mnemonic {
	case "NOP":
		s.PC++
	case "HALT":
		s.Running = false
	case "SET":
		s.SetRegister(x, s.GetRegister(y))
		s.PC++
	case "PCL":
		branch(s, x, s.Flags&FlagL != 0)
	case "PCO":
		branch(s, x, s.Flags&FlagO != 0)
	case "PCS":
		branch(s, x, s.Flags&FlagS != 0)
	case "LDI":
		imm := s.GetByte(s.PC + 1)
		s.SetRegister(x, imm)
		s.PC += 2
	case "LD":
		s.SetRegister(x, s.GetByte(s.GetRegister(y)))
		s.PC++
	case "ADD":
		r, f := Add(s.GetRegister(x), s.GetRegister(y))
		s.SetRegister(x, r)
		s.Flags = f
		s.PC++
	case "SUB":
		r, f := Sub(s.GetRegister(x), s.GetRegister(y))
		s.SetRegister(x, r)
		s.Flags = f
		s.PC++
	case "RSHIFT":
		r, f := RShift(s.GetRegister(x), s.GetRegister(y), s.Flags)
		s.SetRegister(x, r)
		s.Flags = f
		s.PC++
	case "NOT":
		r, f := Not(s.GetRegister(x))
		s.SetRegister(x, r)
		s.Flags = f
		s.PC++
	case "JMP":
		s.PC = s.GetRegister(x)
	case "PCC":
		branch(s, x, s.Flags&FlagC != 0)
	case "PCZ":
		branch(s, x, s.Flags&FlagZ != 0)
	case "AND":
		r, f := And(s.GetRegister(x), s.GetRegister(y), s.Flags)
		s.SetRegister(x, r)
		s.Flags = f
		s.PC++
	case "OR":
		r, f := Or(s.GetRegister(x), s.GetRegister(y), s.Flags)
		s.SetRegister(x, r)
		s.Flags = f
		s.PC++
	case "CMP":
		_, f := Sub(s.GetRegister(x), s.GetRegister(y))
		s.Flags = f
		s.PC++
	case "RAM":
		s.SetByte(s.GetRegister(y), s.GetRegister(x))
		s.PC++
	default:
		// Decode never returns anything outside the catalog; this is
		// unreachable, but fail safe rather than spin.
		s.Running = false
	}
}

// branch sets PC to R[x] when taken, else advances by one byte — the
// PC-update discipline shared by PCL/PCO/PCS/PCC/PCZ.
func branch(s *State, x int, taken bool) {
	if taken {
		s.PC = s.GetRegister(x)
		return
	}
	s.PC++
}

// Run steps s until it halts, optionally stopping early after maxSteps
// instructions (maxSteps <= 0 means unlimited). Returns the number of
// steps actually executed.
func Run(s *State, maxSteps int) int {
	steps := 0
	for s.Running {
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		Step(s)
		steps++
	}
	return steps
}
