package cpu

// State is the complete machine state for one TRISK CPU run: the
// register file, the shared code/data memory, the ALU flags, the
// program counter, and the running flag that HALT clears.
//
// Everything is held by value rather than as pointers to separately
// heap-allocated register file, memory, and ALU objects; State's
// lifetime is whatever owns it.
type State struct {
	Registers [NumRegisters]uint8
	Memory    [MemorySize]byte
	Flags     uint8 // packed C,Z,S,O,L — see flags.go
	PC        uint8
	Running   bool
}

// NumRegisters is the register-file width: R in {0,1,2,3}.
const NumRegisters = 4

// MemorySize is the shared code/data address space.
const MemorySize = 256

// NewState returns a fresh machine: zeroed registers and memory, PC at
// 0, and Running true: memory is created fresh per run.
func NewState() *State {
	return &State{Running: true}
}

// GetRegister reads register x. Out-of-range indices (>= NumRegisters)
// read as 0 — a defensive, observable behavior, not an error.
func (s *State) GetRegister(x int) uint8 {
	if x < 0 || x >= NumRegisters {
		return 0
	}
	return s.Registers[x]
}

// SetRegister writes register x. Out-of-range writes are silently
// dropped.
func (s *State) SetRegister(x int, v uint8) {
	if x < 0 || x >= NumRegisters {
		return
	}
	s.Registers[x] = v
}

// GetByte reads one byte of shared memory.
func (s *State) GetByte(addr uint8) uint8 {
	return s.Memory[addr]
}

// SetByte writes one byte of shared memory.
func (s *State) SetByte(addr uint8, v uint8) {
	s.Memory[addr] = v
}
