package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/trialitycluster/internal/cliconfig"
	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/observable"
	"github.com/katalvlaran/trialitycluster/internal/report"
	"github.com/katalvlaran/trialitycluster/internal/rng"
	"github.com/katalvlaran/trialitycluster/internal/sampler"
	"github.com/katalvlaran/trialitycluster/internal/state"
	"github.com/katalvlaran/trialitycluster/internal/telemetry"
	"github.com/katalvlaran/trialitycluster/internal/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run L0 L1 L2 [L3] NB GAMMA NSWEEP SEED OUTDIR",
	Short: "Run the triality cluster sampler",
	Args:  cobra.RangeArgs(8, 9),
	RunE:  runTrialityCluster,
}

func runTrialityCluster(cmd *cobra.Command, args []string) error {
	cfg, err := cliconfig.Parse(args)
	if err != nil {
		return withExitCode(exitBadArgs, err)
	}

	log := telemetry.New(telemetry.Config{Level: telemetry.Level(logLevel)})
	start := time.Now()

	lat, err := lattice.New(cfg.Sides)
	if err != nil {
		return withExitCode(exitBadArgs, err)
	}

	stream := rng.New(cfg.Seed)
	st, err := state.New(lat, cfg.NB, stream)
	if err != nil {
		return withExitCode(exitBadArgs, err)
	}

	writer, err := report.Open(cfg.Outdir)
	if err != nil {
		return withExitCode(exitGenericErr, err)
	}
	defer writer.Close()

	k := sampler.New(lat, st, stream, cfg.Gamma)
	log.Info("run started", map[string]interface{}{
		"sides": cfg.Sides, "nb": cfg.NB, "gamma": cfg.Gamma,
		"nsweep": cfg.Nsweep, "seed": cfg.Seed,
	})

	initial := observable.Compute(lat, st, sampler.SweepStats{}, k.Constants(), 0, 1)
	if err := writer.WriteInitial(initial); err != nil {
		return withExitCode(exitGenericErr, err)
	}

	for sweep := 1; sweep <= cfg.Nsweep; sweep++ {
		stats := k.Sweep()

		if !skipValidate {
			if err := validate.Run(lat, st); err != nil {
				log.Error("invariant violation", map[string]interface{}{"sweep": sweep, "error": err.Error()})
				return withExitCode(exitInvariant, errors.Wrapf(err, "sweep %d", sweep))
			}
		}

		row := observable.Compute(lat, st, stats, k.Constants(), sweep, 1)
		if err := writer.WriteSweep(row); err != nil {
			return withExitCode(exitGenericErr, err)
		}
	}

	runtime := time.Since(start)
	if err := report.WriteParams(cfg.Outdir, args, fmt.Sprintf("runtime=%s", runtime)); err != nil {
		return withExitCode(exitGenericErr, err)
	}

	log.Info("run finished", map[string]interface{}{"runtime": runtime.String()})

	return nil
}
