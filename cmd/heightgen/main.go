// Command heightgen writes a Perlin noise height map in the RAW format the
// water demo loads.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-water/internal/heightgen"
	"github.com/Faultbox/midgard-water/internal/logger"
)

func main() {
	def := heightgen.DefaultParams()
	out := flag.String("out", "assets/terrain_height.raw", "Output RAW file")
	width := flag.Int("width", def.Width, "Samples along X")
	height := flag.Int("height", def.Height, "Samples along Z")
	seed := flag.Int64("seed", def.Seed, "Noise seed")
	alpha := flag.Float64("alpha", def.Alpha, "Amplitude falloff per octave")
	beta := flag.Float64("beta", def.Beta, "Frequency growth per octave")
	octaves := flag.Int("octaves", int(def.Octaves), "Noise octaves")
	scale := flag.Float64("scale", def.Scale, "Samples per noise unit")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	if err := logger.InitWithOptions(logger.Options{Level: level, Console: true}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := heightgen.Params{
		Width:   *width,
		Height:  *height,
		Seed:    *seed,
		Alpha:   *alpha,
		Beta:    *beta,
		Octaves: int32(*octaves),
		Scale:   *scale,
	}
	logger.Debug("generating", zap.Any("params", p))

	data, err := heightgen.RAW(p)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Fatal("write failed", zap.String("path", *out), zap.Error(err))
	}
	logger.Info("height map written",
		zap.String("path", *out),
		zap.Int("width", p.Width),
		zap.Int("height", p.Height),
		zap.Int64("seed", p.Seed),
	)
}
