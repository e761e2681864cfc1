package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/vec"
)

var growthElemSize int

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVar(&growthElemSize, "elem-size", 8, "Element size in bytes (1, 4, or 8)")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth <target-length>",
		Short: "Show the capacity schedule up to a target length",
		Long: `The growth command pushes elements until the target length is
reached and records every capacity change, showing the growth policy
in action (first step to 4 slots, then roughly 1.5x per step).

Example:
  vecstress growth 1000000
  vecstress growth 1000 --elem-size 1 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[0])
			if err != nil || target < 0 {
				return fmt.Errorf("invalid target length %q", args[0])
			}
			return runGrowth(target)
		},
	}
}

// GrowthStep records one capacity change while filling a vector.
type GrowthStep struct {
	Length   int
	Capacity int
}

func runGrowth(target int) error {
	var steps []GrowthStep
	switch growthElemSize {
	case 1:
		steps = recordGrowth[uint8](target)
	case 4:
		steps = recordGrowth[uint32](target)
	case 8:
		steps = recordGrowth[uint64](target)
	default:
		return fmt.Errorf("unsupported element size %d", growthElemSize)
	}

	if jsonOut {
		return printJSON(steps)
	}
	printInfo("%-12s %s\n", "LENGTH", "CAPACITY")
	for _, s := range steps {
		printInfo("%-12d %d\n", s.Length, s.Capacity)
	}
	return nil
}

func recordGrowth[T any](target int) []GrowthStep {
	v := vec.New[T]()
	defer v.Close()

	var steps []GrowthStep
	var elem T
	for v.Len() < target {
		if err := v.Push(elem); err != nil {
			break
		}
		if n := len(steps); n == 0 || steps[n-1].Capacity != v.Cap() {
			steps = append(steps, GrowthStep{Length: v.Len(), Capacity: v.Cap()})
		}
	}
	return steps
}
