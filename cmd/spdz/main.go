// Command spdz runs a single-process simulation of the online phase:
// a trusted dealer stands in for preprocessing, and one orchestrator
// drives all parties, which is enough to watch the protocols compose.
package main

import (
	"context"
	"crypto/rand"
	"os"
	"time"

	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/preprocess"
	"github.com/mpcforge/spdz-online/pkg/round"
	"github.com/mpcforge/spdz-online/protocols/online"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var (
	flagModulus uint64
	flagParties int
	flagSecretX uint64
	flagSecretY uint64
	flagMACKey  uint64
	flagDebug   bool
	flagProfile bool
)

func main() {
	root := &cobra.Command{
		Use:   "spdz",
		Short: "SPDZ online-phase simulator",
	}

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "input two secrets, multiply them, reshare and open the result",
		RunE:  runSimulate,
	}
	simulate.Flags().Uint64Var(&flagModulus, "modulus", 97, "prime field modulus")
	simulate.Flags().IntVar(&flagParties, "parties", 3, "number of parties")
	simulate.Flags().Uint64Var(&flagSecretX, "x", 42, "first secret input")
	simulate.Flags().Uint64Var(&flagSecretY, "y", 7, "second secret input")
	simulate.Flags().Uint64Var(&flagMACKey, "mac-key", 0, "fixed MAC key (0 samples one)")
	simulate.Flags().BoolVar(&flagDebug, "debug", false, "log round traffic")
	simulate.Flags().BoolVar(&flagProfile, "profile", false, "write a CPU profile to the working directory")
	root.AddCommand(simulate)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func runSimulate(*cobra.Command, []string) error {
	if flagProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	f, err := field.NewUint64(flagModulus)
	if err != nil {
		return err
	}

	var dealer *preprocess.Dealer
	if flagMACKey != 0 {
		dealer, err = preprocess.NewDealerWithKey(f, flagParties, f.FromUint64(flagMACKey), rand.Reader)
	} else {
		dealer, err = preprocess.NewDealer(f, flagParties, rand.Reader)
	}
	if err != nil {
		return err
	}
	alpha := dealer.MACKey()
	log.Info().Uint64("p", flagModulus).Int("n", flagParties).Msg("execution set up")

	maskX, err := dealer.Mask()
	if err != nil {
		return err
	}
	maskY, err := dealer.Mask()
	if err != nil {
		return err
	}

	x := f.FromUint64(flagSecretX)
	y := f.FromUint64(flagSecretY)

	X, epsX, err := online.Input(x, maskX, alpha)
	if err != nil {
		return err
	}
	Y, epsY, err := online.Input(y, maskY, alpha)
	if err != nil {
		return err
	}
	log.Info().Str("eps_x", epsX.String()).Str("eps_y", epsY.String()).Msg("inputs shared")

	triple, err := dealer.Triple()
	if err != nil {
		return err
	}
	Z, e, d, err := online.Multiply(X, Y, triple)
	if err != nil {
		return err
	}
	// fold the e⋅d cross term back in to land on the full product
	Z, err = Z.AddPublic(e.Mul(d), alpha)
	if err != nil {
		return err
	}
	log.Info().Str("e", e.String()).Str("d", d.String()).Msg("beaver openings revealed")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ch := round.NewChannel(flagParties)

	reshareMask, err := dealer.Mask()
	if err != nil {
		return err
	}
	Z, info, err := online.Reshare(ctx, Z, reshareMask, online.PreserveSecret, alpha, ch, rand.Reader)
	if err != nil {
		return err
	}
	log.Info().Str("epsilon", info.Epsilon.String()).Str("round", info.Round.String()).Msg("reshared")

	opened, err := online.Output(Z, alpha)
	if err != nil {
		return xerrors.Errorf("opening failed: %w", err)
	}

	expected := x.Mul(y)
	if !opened.Equal(expected) {
		return xerrors.Errorf("opened %s, expected %s", opened, expected)
	}
	log.Info().Str("product", opened.String()).Msg("output verified")
	return nil
}
