// Package logisim writes the Logisim "v2.0 raw" memory-image text
// format: a 256-byte memory image rendered as hex text.
package logisim

import (
	"bufio"
	"fmt"
	"io"
)

const header = "v2.0 raw\n"

// Export writes the Logisim text representation of img to w: the
// literal header line, then 256 lowercase hex byte values separated
// by a single space.
func Export(w io.Writer, img [256]byte) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header); err != nil {
		return fmt.Errorf("writing logisim header: %w", err)
	}
	for i, b := range img {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return fmt.Errorf("writing logisim body: %w", err)
			}
		}
		if _, err := fmt.Fprintf(bw, "%x", b); err != nil {
			return fmt.Errorf("writing logisim body: %w", err)
		}
	}
	return bw.Flush()
}
