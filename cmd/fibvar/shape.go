package main

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/HegelXu/fibonacci-variant/fibvar"
	"github.com/HegelXu/fibonacci-variant/logger"
	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/HegelXu/fibonacci-variant/plonkish/layout"
	"github.com/spf13/cobra"
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "run the shape-only synthesis and print the setup digest",
	RunE:  shape,
}

func shape(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	circuit, err := fibvar.NewCircuit(plonkish.Unknown(), plonkish.Unknown(), plonkish.Unknown(), fLength)
	if err != nil {
		return err
	}

	sys := plonkish.NewSystem()
	circuit.Configure(sys)
	planner := layout.NewPlanner(sys, 1<<fK)
	if err := circuit.Synthesize(planner); err != nil {
		return err
	}

	s := planner.Shape()
	blob, err := s.ToBytes()
	if err != nil {
		return err
	}
	digest := sha256.Sum256(blob)

	log.Info().
		Int("rows", planner.RowsUsed()).
		Int("capacity", planner.NbRows()).
		Str("digest", hex.EncodeToString(digest[:])).
		Msg("shape")
	return nil
}

func init() {
	rootCmd.AddCommand(shapeCmd)
}
