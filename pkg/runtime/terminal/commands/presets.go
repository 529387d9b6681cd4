package commands

import (
	"fmt"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/spf13/cobra"
)

type PresetsCmd struct {
	region string
	rt     *Runtime
}

func NewPresetsCmd(rt *Runtime) *cobra.Command {
	pc := &PresetsCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the conservative, realistic and ambitious presets per market",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.region, "region", "", "Only list presets for this market (dubai or paris)")

	return cmd
}

func (pc *PresetsCmd) run(cmd *cobra.Command, _ []string) error {
	regions := domain.Regions
	if pc.region != "" {
		region, err := domain.ParseRegion(pc.region)
		if err != nil {
			return err
		}
		regions = []domain.Region{region}
	}

	out := cmd.OutOrStdout()
	f := pc.rt.Formatter
	for _, region := range regions {
		presets, err := pc.rt.Presets.ListPresets(region)
		if err != nil {
			return fmt.Errorf("failed to list presets for %s: %w", region, err)
		}
		fmt.Fprintf(out, "%s\n", region.Label())
		for _, p := range presets {
			fmt.Fprintf(out, "  %-13s %4s cases/month  %s\n", p.Tier, f.Integer(p.CasesPerMonth), f.Currency(p.PatientFee))
		}
	}
	return nil
}
