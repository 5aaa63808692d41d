package main

import (
	"github.com/spf13/cobra"

	"github.com/repols/repols/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Check environment and configuration",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Check that repols can run: git on PATH, config parses, roots exist
and are directories, styles, cycle and sort column resolve.

Exits nonzero when issues were found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doctor.Run(cmd.Context())
		},
	}
}
