// Command tas is the TRISK assembler: two positional arguments, a
// source file and an output image path.
package main

import (
	"fmt"
	"os"

	"github.com/addictgamer/trisk/pkg/asm"
	"github.com/addictgamer/trisk/pkg/image"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tas <source> <image>",
		Short: "Assemble TRISK source into a 256-byte image",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tas:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srcPath, outPath := args[0], args[1]

	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	img, err := asm.Assemble(string(src))
	if err != nil {
		return fmt.Errorf("assembling %s: %w", srcPath, err)
	}

	if err := image.Save(outPath, img); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("wrote %s (%d bytes)\n", outPath, image.Size)
	return nil
}
