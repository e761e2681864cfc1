package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/mem"
	"github.com/joshuapare/veckit/vec"
)

var (
	stressAllocator string
	stressTeardown  string
	stressArenaSize int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().StringVar(&stressAllocator, "allocator", "heap", "Allocator: heap, arena, or mmap")
	cmd.Flags().StringVar(&stressTeardown, "teardown", "drain", "Teardown: drain or pop")
	cmd.Flags().
		IntVar(&stressArenaSize, "arena-size", 1<<28, "Arena region size in bytes (arena allocator only)")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress <count>",
		Short: "Push, verify, and tear down a large vector",
		Long: `The stress command pushes count increasing integers into a vector,
verifies ordering, tears the vector down, and reports counting-allocator
statistics for the whole run.

Example:
  vecstress stress 10000000
  vecstress stress 1000000 --allocator mmap --teardown pop --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return fmt.Errorf("invalid count %q", args[0])
			}
			return runStress(count)
		},
	}
}

// StressReport summarizes one stress run.
type StressReport struct {
	Count     int
	Allocator string
	Teardown  string
	FinalCap  int
	Elapsed   string
	Stats     mem.Stats
}

func pickAllocator() (mem.Allocator, error) {
	switch stressAllocator {
	case "heap":
		return mem.HeapAllocator{}, nil
	case "arena":
		return mem.NewArena(stressArenaSize), nil
	case "mmap":
		return mem.NewMmap()
	default:
		return nil, fmt.Errorf("unknown allocator %q", stressAllocator)
	}
}

func runStress(count int) error {
	inner, err := pickAllocator()
	if err != nil {
		return err
	}
	counting := mem.NewCounting(inner)

	start := time.Now()
	v := vec.NewIn[int](counting)
	for i := 0; i < count; i++ {
		if err := v.Push(i); err != nil {
			return fmt.Errorf("push %d of %d: %w", i, count, err)
		}
	}
	if v.Len() != count {
		return fmt.Errorf("length mismatch: got %d, want %d", v.Len(), count)
	}
	if count > 0 {
		mid := count / 2
		if got := v.At(mid); got != mid {
			return fmt.Errorf("element %d: got %d", mid, got)
		}
	}
	finalCap := v.Cap()

	switch stressTeardown {
	case "drain":
		d := v.Drain()
		yielded := 0
		for {
			if _, ok := d.Next(); !ok {
				break
			}
			yielded++
		}
		d.Close()
		if yielded != count {
			return fmt.Errorf("drain yielded %d of %d", yielded, count)
		}
		v.Close()
	case "pop":
		v.Close()
	default:
		return fmt.Errorf("unknown teardown %q", stressTeardown)
	}

	report := StressReport{
		Count:     count,
		Allocator: stressAllocator,
		Teardown:  stressTeardown,
		FinalCap:  finalCap,
		Elapsed:   time.Since(start).String(),
		Stats:     counting.Stats(),
	}
	if jsonOut {
		return printJSON(report)
	}
	printInfo("pushed %d elements (%s allocator, %s teardown)\n",
		report.Count, report.Allocator, report.Teardown)
	printInfo("final capacity: %d\n", report.FinalCap)
	printInfo("elapsed: %s\n", report.Elapsed)
	printInfo("allocator: live=%dB peak=%dB allocs=%d grows=%d frees=%d\n",
		report.Stats.LiveBytes, report.Stats.PeakBytes,
		report.Stats.Allocs, report.Stats.Grows, report.Stats.Frees)
	if report.Stats.LiveBytes != 0 {
		printInfo("warning: %d bytes still live after teardown\n", report.Stats.LiveBytes)
	}
	return nil
}
