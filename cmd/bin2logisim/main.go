// Command bin2logisim exports a 256-byte TRISK image as a Logisim
// "v2.0 raw" memory-image text file.
package main

import (
	"fmt"
	"os"

	"github.com/addictgamer/trisk/pkg/image"
	"github.com/addictgamer/trisk/pkg/logisim"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bin2logisim <image> <out.txt>",
		Short: "Export a TRISK image to Logisim's raw text format",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bin2logisim:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	img, warning, err := image.Load(inPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inPath, err)
	}
	if warning != "" {
		fmt.Fprintln(os.Stderr, "bin2logisim:", warning)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := logisim.Export(f, img); err != nil {
		return fmt.Errorf("exporting %s: %w", outPath, err)
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}
