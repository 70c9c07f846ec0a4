// Package main provides the convbench CLI.
//
// convbench runs direct-convolution workloads on the CPU and reports timing
// statistics. The default run executes the built-in catalog's conv_fp32
// case: the 7x56x32 feature map against a 3x3x32x8 filter bank.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/convbench-ml/convbench/internal/bench"
	"github.com/convbench-ml/convbench/internal/conv"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("convbench %s\n", version)
		return
	}

	var (
		caseNames = flag.String("case", "conv_fp32", "comma-separated case names, or \"all\"")
		reps      = flag.Int("reps", 10, "timed repetitions per case")
		warmup    = flag.Int("warmup", 3, "untimed warmup repetitions per case")
		par       = flag.Bool("parallel", false, "use the row-parallel kernel")
		noVerify  = flag.Bool("no-verify", false, "skip golden-model verification")
		list      = flag.Bool("list", false, "list built-in cases and exit")
		dims      = flag.String("dims", "", "custom workload as H,W,I,J,C,K (overrides -case)")
	)
	flag.Parse()

	if *list {
		for _, c := range bench.Cases() {
			fmt.Printf("%-16s %s\n", c.Name, c.Dims)
		}
		return
	}

	opts := bench.DefaultOptions()
	opts.Reps = *reps
	opts.Warmup = *warmup
	opts.Parallel = *par
	opts.Verify = !*noVerify

	cases, err := selectCases(*caseNames, *dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convbench: %v\n", err)
		os.Exit(1)
	}

	for _, c := range cases {
		result, err := bench.Run(c, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "convbench: case %q: %v\n", c.Name, err)
			os.Exit(1)
		}
		fmt.Println(result)
	}
}

// selectCases resolves the -case/-dims flags into workloads to run.
func selectCases(names, dims string) ([]bench.Case, error) {
	if dims != "" {
		d, err := parseDims(dims)
		if err != nil {
			return nil, err
		}
		return []bench.Case{{
			Name:       "custom",
			Dims:       d,
			InputFill:  1.0,
			WeightFill: 0.1,
		}}, nil
	}

	if names == "all" {
		return bench.Cases(), nil
	}

	var cases []bench.Case
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		c, ok := bench.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown case %q (use -list)", name)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// parseDims parses "H,W,I,J,C,K" into workload dimensions.
func parseDims(s string) (conv.Dims, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return conv.Dims{}, fmt.Errorf("dims must be H,W,I,J,C,K, got %q", s)
	}
	vals := make([]int, 6)
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &vals[i]); err != nil {
			return conv.Dims{}, fmt.Errorf("dims component %q is not an integer", p)
		}
	}
	d := conv.Dims{H: vals[0], W: vals[1], I: vals[2], J: vals[3], C: vals[4], K: vals[5]}
	if err := d.Validate(); err != nil {
		return conv.Dims{}, err
	}
	return d, nil
}
