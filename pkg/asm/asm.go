// Package asm implements the two-pass TRISK assembler: a preprocess
// pass that resolves label addresses, and an emit pass that walks the
// label-free token stream and produces the 256-byte image.
//
// The per-mnemonic virtual-dispatch class hierarchy of a classic
// recursive-descent assembler is replaced here by pkg/inst's flat
// Catalog table.
package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/addictgamer/trisk/pkg/inst"
)

// Sentinel errors so callers can distinguish assembly failure modes
// with errors.Is.
var (
	ErrProgramTooLarge  = errors.New("program exceeds 256 bytes")
	ErrLabelRedefined   = errors.New("label redefined")
	ErrReservedLabel    = errors.New("label name collides with a mnemonic")
	ErrUnknownLabel     = errors.New("reference to undefined label")
	ErrInvalidRegister  = errors.New("register index out of range")
	ErrMalformedInteger = errors.New("malformed integer literal")
	ErrMissingOperand   = errors.New("missing operand")
)

// Tokenize splits source text on whitespace. Comments and quoted
// strings are not part of this assembly language.
func Tokenize(src string) []string {
	return strings.Fields(src)
}

// Preprocess walks tokens once, computing each label's byte address
// under the same size model Emit uses, and returns the token stream
// with label-definition tokens ("name:") removed.
//
// A label used as an operand is skipped over, not separately sized —
// num_params tokens following a mnemonic are consumed unconditionally,
// whether or not one of them happens to be a label reference.
func Preprocess(tokens []string) (labels map[string]byte, clean []string, err error) {
	labels = make(map[string]byte)
	clean = make([]string, 0, len(tokens))
	addr := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		upper := strings.ToUpper(tok)

		if strings.HasSuffix(tok, ":") {
			name := strings.ToUpper(strings.TrimSuffix(tok, ":"))
			if inst.IsReserved(name) {
				return nil, nil, fmt.Errorf("label %q: %w", name, ErrReservedLabel)
			}
			if _, exists := labels[name]; exists {
				return nil, nil, fmt.Errorf("label %q: %w", name, ErrLabelRedefined)
			}
			labels[name] = byte(addr)
			continue
		}

		if info, ok := inst.Lookup(upper); ok {
			if addr+info.Size > 256 {
				return nil, nil, fmt.Errorf("at %q: %w", tok, ErrProgramTooLarge)
			}
			addr += info.Size
			clean = append(clean, tok)
			for p := 0; p < info.NumParams() && i+1 < len(tokens); p++ {
				i++
				clean = append(clean, tokens[i])
			}
			continue
		}

		// Bare token: a forward or backward label reference, one byte.
		if addr+1 > 256 {
			return nil, nil, fmt.Errorf("at %q: %w", tok, ErrProgramTooLarge)
		}
		addr++
		clean = append(clean, tok)
	}

	return labels, clean, nil
}

// Emit walks the label-free token stream produced by Preprocess and
// writes the 256-byte image.
func Emit(tokens []string, labels map[string]byte) ([256]byte, error) {
	var img [256]byte
	addr := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		upper := strings.ToUpper(tok)

		if upper == "BYTE" {
			i++
			if i >= len(tokens) {
				return img, fmt.Errorf("BYTE: %w", ErrMissingOperand)
			}
			v, err := parseByteLiteral(tokens[i])
			if err != nil {
				return img, err
			}
			if addr >= 256 {
				return img, fmt.Errorf("at BYTE %s: %w", tokens[i], ErrProgramTooLarge)
			}
			img[addr] = v
			addr++
			continue
		}

		if info, ok := inst.Lookup(upper); ok {
			params := make([]int, 0, info.NumParams())
			for p := 0; p < info.NumParams(); p++ {
				i++
				if i >= len(tokens) {
					return img, fmt.Errorf("%s: %w", upper, ErrMissingOperand)
				}
				v, err := parseOperand(tokens[i])
				if err != nil {
					return img, err
				}
				params = append(params, v)
			}

			x, y, imm := 0, 0, 0
			switch info.Shape {
			case inst.ShapeOneReg:
				x = params[0]
				if x >= inst.NumRegisters {
					return img, fmt.Errorf("%s: register %d: %w", upper, x, ErrInvalidRegister)
				}
			case inst.ShapeTwoReg:
				x, y = params[0], params[1]
				if x >= inst.NumRegisters {
					return img, fmt.Errorf("%s: register %d: %w", upper, x, ErrInvalidRegister)
				}
				if y >= inst.NumRegisters {
					return img, fmt.Errorf("%s: register %d: %w", upper, y, ErrInvalidRegister)
				}
			case inst.ShapeRegImm:
				x, imm = params[0], params[1]
				if x >= inst.NumRegisters {
					return img, fmt.Errorf("%s: register %d: %w", upper, x, ErrInvalidRegister)
				}
			}

			if addr+info.Size > 256 {
				return img, fmt.Errorf("at %s: %w", upper, ErrProgramTooLarge)
			}
			out, n := inst.Encode(info, x, y, imm)
			for k := 0; k < n; k++ {
				img[addr+k] = out[k]
			}
			addr += info.Size
			continue
		}

		// Bare token: resolve as a label.
		name := upper
		val, ok := labels[name]
		if !ok {
			return img, fmt.Errorf("%q: %w", tok, ErrUnknownLabel)
		}
		if addr >= 256 {
			return img, fmt.Errorf("at %q: %w", tok, ErrProgramTooLarge)
		}
		img[addr] = val
		addr++
	}

	return img, nil
}

// Assemble runs both passes and returns the finished image. It is the
// package's single entry point for callers that don't need the
// intermediate label table.
func Assemble(src string) ([256]byte, error) {
	tokens := Tokenize(src)
	labels, clean, err := Preprocess(tokens)
	if err != nil {
		return [256]byte{}, err
	}
	return Emit(clean, labels)
}

func isAllDigits(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseOperand implements the operand rule: a token that is entirely
// decimal digits is parsed as an integer (truncated to 8 bits on
// overflow); anything else is treated as a register name, its value
// the first letter minus 'A'. This applies uniformly to every operand
// slot consumed by a mnemonic — including LDI's immediate slot, which
// is never range-checked as a register index.
func parseOperand(tok string) (int, error) {
	if isAllDigits(tok) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", tok, ErrMalformedInteger)
		}
		return n & 0xFF, nil
	}
	upper := strings.ToUpper(tok)
	return int(upper[0] - 'A'), nil
}

// parseByteLiteral parses BYTE's operand, which must be decimal.
func parseByteLiteral(tok string) (byte, error) {
	if !isAllDigits(tok) {
		return 0, fmt.Errorf("%q: %w", tok, ErrMalformedInteger)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrMalformedInteger)
	}
	return byte(n & 0xFF), nil
}
