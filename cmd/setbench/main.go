// Command setbench times hashset operations against the builtin map.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/adm87/hashset/internal/bench"
	"github.com/adm87/hashset/internal/config"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

type CLI struct {
	Config  string `short:"c" help:"Workload file path (YAML)" type:"path" env:"SETBENCH_CONFIG"`
	Size    int    `short:"n" help:"Elements per workload" default:"1024" env:"SETBENCH_SIZE"`
	Rounds  int    `short:"r" help:"Rounds per operation" default:"10" env:"SETBENCH_ROUNDS"`
	Hasher  string `help:"Hasher to use" enum:"random,fixed" default:"random" env:"SETBENCH_HASHER"`
	Seed    uint64 `help:"Seed for the fixed hasher" env:"SETBENCH_SEED"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

// AfterApply sets up logging once flags are parsed.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func (c *CLI) workloads() (*config.Config, error) {
	if c.Config != "" {
		return config.Load(c.Config)
	}
	return config.Parse(nil)
}

func (c *CLI) Run() error {
	cfg, err := c.workloads()
	if err != nil {
		return err
	}
	if c.Config == "" {
		w := &cfg.Workloads[0]
		w.Size, w.Rounds, w.Hasher, w.Seed = c.Size, c.Rounds, c.Hasher, c.Seed
	}

	data := pterm.TableData{{"Workload", "Hasher", "Operation", "Size", "Mean"}}
	for _, w := range cfg.Workloads {
		slog.Info("Running workload", "name", w.Name, "size", w.Size, "rounds", w.Rounds, "hasher", w.Hasher)
		results, err := bench.Run(w)
		if err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}
		for _, r := range results {
			data = append(data, []string{r.Workload, w.Hasher, r.Op, fmt.Sprint(r.Size), r.Mean.String()})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("setbench"),
		kong.Description("Time hashset operations against the builtin map."),
	)
	if err := ctx.Run(); err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}
}
