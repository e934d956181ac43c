package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/f3rmion/eos/bn254"
	"github.com/f3rmion/eos/circuit"
	"github.com/f3rmion/eos/eval"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/mode"
	"github.com/f3rmion/eos/protocol"
	"github.com/f3rmion/eos/sharing"
)

func main() {
	command := &cobra.Command{
		Use:   "eosdemo",
		Short: "Demonstrate secret-shared circuit evaluation and delegation",
	}
	addRunCmd(command)

	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRunCmd(command *cobra.Command) {
	var (
		secret    uint64
		threshold int
		parties   int
		verbose   bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run an end-to-end demo with Shamir sharing in both operation modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return runDemo(secret, threshold, parties)
		},
	}

	runCmd.Flags().Uint64Var(&secret, "secret", 42, "Secret input value")
	runCmd.Flags().IntVarP(&threshold, "threshold", "t", 3, "Reconstruction threshold")
	runCmd.Flags().IntVarP(&parties, "parties", "n", 5, "Number of parties")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	command.AddCommand(runCmd)
}

func runDemo(secretValue uint64, threshold, parties int) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	f := &bn254.Fr{}
	metrics := eval.NewMetrics()

	exec, err := circuit.New(0, parties, sharing.NewShamir(f))
	if err != nil {
		return err
	}

	// Share, add, and reveal: the core round trip.
	timer := metrics.StartTimer("sharing")
	secret := f.FromUint64(secretValue)
	shares, err := exec.InputSecret(secret, threshold, rand.Reader)
	if err != nil {
		return err
	}
	timer.Stop()

	revealed, err := exec.RevealSecret(shares[:threshold])
	if err != nil {
		return err
	}
	logger.Info().
		Int("parties", parties).
		Int("threshold", threshold).
		Bool("round_trip_ok", revealed.Equal(secret)).
		Msg("secret shared and reconstructed")

	// Delegate a small witness under both operation modes.
	witness := []field.Element{
		secret,
		f.FromUint64(7),
		f.FromUint64(13),
	}
	constraints := circuit.ConstraintSystem{
		NumConstraints:  4,
		NumVariables:    len(witness),
		NumPublicInputs: 1,
	}

	modes := []struct {
		name string
		mode mode.Mode
	}{
		{"isolation", mode.NewIsolation(1, 3)},
		{"collaboration", mode.NewCollaboration(3, true, true)},
	}

	for _, m := range modes {
		p := protocol.New(f, exec, m.mode, protocol.NewParams(8), logger)

		timer := metrics.StartTimer(m.name + " preprocess")
		if err := p.Preprocess(constraints, rand.Reader); err != nil {
			return err
		}
		timer.Stop()

		timer = metrics.StartTimer(m.name + " delegate")
		result, err := p.Delegate(witness, rand.Reader)
		if err != nil {
			return err
		}
		timer.Stop()

		ok, err := p.Verify(result)
		if err != nil {
			return err
		}
		metrics.RecordComplexity(result.Complexity)
		metrics.CountGates(len(witness)-1, 0)

		logger.Info().
			Str("mode", m.name).
			Bool("verified", ok).
			Int("rounds", result.Complexity.Rounds).
			Int("total_bytes", result.Complexity.TotalBytes()).
			Msg("delegation finished")
	}

	metrics.Report().Render(os.Stdout)
	return nil
}
