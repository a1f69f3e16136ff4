// Command tem is the TRISK emulator: loads an image, runs it to
// completion, and writes the final memory state back out.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/addictgamer/trisk/pkg/cpu"
	"github.com/addictgamer/trisk/pkg/image"
	"github.com/addictgamer/trisk/pkg/inst"
	"github.com/spf13/cobra"
)

func main() {
	var maxSteps int
	var trace bool

	rootCmd := &cobra.Command{
		Use:   "tem <image> <out-image>",
		Short: "Run a TRISK image to completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], maxSteps, trace)
		},
	}
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unlimited)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "print one line per fetched instruction")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tem:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, maxSteps int, trace bool) error {
	img, warning, err := image.Load(inPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inPath, err)
	}
	if warning != "" {
		fmt.Fprintln(os.Stderr, "tem:", warning)
	}

	s, err := cpu.NewStateFromImage(img)
	if err != nil {
		if errors.Is(err, cpu.ErrEmptyProgram) {
			fmt.Fprintln(os.Stderr, "tem: empty program, nothing to run")
			return nil
		}
		return err
	}

	steps := 0
	for s.Running {
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		if trace {
			mnemonic, x, y := inst.Decode(s.GetByte(s.PC))
			fmt.Printf("PC=%02X %-7s x=%d y=%d\n", s.PC, mnemonic, x, y)
		}
		cpu.Step(s)
		steps++
	}

	if err := image.Save(outPath, s.Memory); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("executed %d steps, wrote %s\n", steps, outPath)
	return nil
}
