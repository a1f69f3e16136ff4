package asm

import (
	"testing"

	"github.com/addictgamer/trisk/pkg/cpu"
	"github.com/addictgamer/trisk/pkg/inst"
	"github.com/stretchr/testify/require"
)

// TestAssembleS1: LDI A 5; LDI B 3; ADD A B; HALT.
func TestAssembleS1(t *testing.T) {
	img, err := Assemble("LDI A 5 LDI B 3 ADD A B HALT")
	require.NoError(t, err)
	require.Equal(t, []byte{0x6C, 0x05, 0x6D, 0x03, 0x81, 0x01}, img[:6])
	for _, b := range img[6:] {
		require.Zero(t, b)
	}
}

// TestAssembleS2 pins scenario S2.
func TestAssembleS2(t *testing.T) {
	img, err := Assemble("LDI A 0 LDI B 1 SUB A B HALT")
	require.NoError(t, err)
	require.Equal(t, []byte{0x6C, 0x00, 0x6D, 0x01, 0x91, 0x01}, img[:6])
}

// TestAssembleS3 pins scenario S3: the token "end" in LDI's immediate
// slot goes through the operand rule, which reads it as 'E'-'A' = 4,
// the same value as end's address (the second HALT).
func TestAssembleS3(t *testing.T) {
	img, err := Assemble("LDI A end JMP A HALT end: HALT")
	require.NoError(t, err)
	require.Equal(t, byte(0x6C), img[0]) // LDI A,_
	require.Equal(t, byte(4), img[1])    // "end" read as 'E'-'A' = 4, end's address
	require.Equal(t, byte(0xB1), img[2]) // JMP A
	require.Equal(t, byte(0x01), img[3]) // first HALT
	require.Equal(t, byte(0x01), img[4]) // end: HALT

	s, err := cpu.NewStateFromImage(img)
	require.NoError(t, err)
	cpu.Run(s, 10)
	require.EqualValues(t, 4, s.PC, "execution should land on the second HALT")
}

// TestAssembleS4 pins scenario S4.
func TestAssembleS4(t *testing.T) {
	img, err := Assemble("LDI A 15 LDI B 2 RSHIFT A B HALT")
	require.NoError(t, err)
	require.Equal(t, []byte{0x6C, 0x0F, 0x6D, 0x02, 0xA1, 0x01}, img[:6])
}

// TestAssembleS6 pins scenario S6: RAM A,B encodes to the single byte 0xF1.
func TestAssembleS6(t *testing.T) {
	img, err := Assemble("RAM A B")
	require.NoError(t, err)
	require.Equal(t, byte(0xF1), img[0])
}

// TestLabelResolutionForwardAndBackward checks that a label resolves
// to the same address regardless of whether it is referenced before
// or after its definition.
func TestLabelResolutionForwardAndBackward(t *testing.T) {
	t.Run("forward reference", func(t *testing.T) {
		img, err := Assemble("BYTE 1 target BYTE 2 target: BYTE 3")
		require.NoError(t, err)
		require.EqualValues(t, 3, img[1])
	})
	t.Run("backward reference", func(t *testing.T) {
		img, err := Assemble("target: BYTE 9 BYTE 1 target")
		require.NoError(t, err)
		require.EqualValues(t, 0, img[2])
	})
}

// TestSizeInvariant checks that a program exactly filling the image
// assembles to 256 bytes with the remainder zero — here, trivially,
// 256 NOPs.
func TestSizeInvariant(t *testing.T) {
	src := ""
	for i := 0; i < 256; i++ {
		src += "NOP "
	}
	img, err := Assemble(src)
	require.NoError(t, err)
	for _, b := range img {
		require.Zero(t, b)
	}
}

// TestProgramTooLargeFails checks the address-overflow check.
func TestProgramTooLargeFails(t *testing.T) {
	src := ""
	for i := 0; i < 257; i++ {
		src += "NOP "
	}
	_, err := Assemble(src)
	require.ErrorIs(t, err, ErrProgramTooLarge)
}

// TestRoundTripViaAssemble exercises the encode/decode round trip
// through the full Tokenize/Preprocess/Emit pipeline rather than
// pkg/inst directly.
func TestRoundTripViaAssemble(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"SET A B", "SET"},
		{"ADD C D", "ADD"},
		{"SUB A A", "SUB"},
		{"AND B C", "AND"},
		{"OR D A", "OR"},
		{"CMP A B", "CMP"},
		{"RAM A B", "RAM"},
		{"LD A B", "LD"},
		{"NOT C", "NOT"},
		{"JMP A", "JMP"},
		{"PCC A", "PCC"},
		{"PCZ A", "PCZ"},
		{"PCL A", "PCL"},
		{"PCO A", "PCO"},
		{"PCS A", "PCS"},
		{"RSHIFT A B", "RSHIFT"},
	}
	for _, tt := range tests {
		img, err := Assemble(tt.src)
		require.NoError(t, err, tt.src)
		gotName, _, _ := inst.Decode(img[0])
		require.Equal(t, tt.want, gotName, tt.src)
	}
}

func TestCaseInsensitiveMnemonicsAndRegisters(t *testing.T) {
	img, err := Assemble("ldi a 9 halt")
	require.NoError(t, err)
	require.Equal(t, byte(0x6C), img[0])
	require.Equal(t, byte(9), img[1])
	require.Equal(t, byte(0x01), img[2])
}

func TestByteLiteralTruncation(t *testing.T) {
	img, err := Assemble("BYTE 260")
	require.NoError(t, err)
	require.Equal(t, byte(4), img[0]) // 260 & 0xFF == 4
}

func TestInvalidRegisterRejected(t *testing.T) {
	_, err := Assemble("SET 7 0")
	require.ErrorIs(t, err, ErrInvalidRegister)
}

func TestUnknownLabelFails(t *testing.T) {
	_, err := Assemble("JMP A nowhere")
	require.ErrorIs(t, err, ErrUnknownLabel)
}

func TestLabelRedefinitionFails(t *testing.T) {
	_, _, err := Preprocess(Tokenize("start: HALT start: HALT"))
	require.ErrorIs(t, err, ErrLabelRedefined)
}

func TestReservedLabelNameFails(t *testing.T) {
	_, _, err := Preprocess(Tokenize("halt: HALT"))
	require.ErrorIs(t, err, ErrReservedLabel)
}

func TestMalformedByteLiteralFails(t *testing.T) {
	_, err := Assemble("BYTE abc")
	require.ErrorIs(t, err, ErrMalformedInteger)
}

func TestMissingOperandFails(t *testing.T) {
	_, err := Assemble("LDI A")
	require.ErrorIs(t, err, ErrMissingOperand)
}
