package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sfm61319/dye/internal/colorspace"
	"github.com/sfm61319/dye/internal/tui"
)

var flagRandomSeed int64

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random color",
	Long: `Pick a uniformly random RGB color and display it in every model.

Examples:
  dye random
  dye random --seed 42   # Reproducible pick`,
	Args: cobra.NoArgs,
	Run:  runRandom,
}

func init() {
	randomCmd.Flags().Int64Var(&flagRandomSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runRandom(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	seed := flagRandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fmt.Println(tui.Describe(colorspace.Random(rng), cfg))
}
