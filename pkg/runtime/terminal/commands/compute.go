package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/adapters"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/config"
	"github.com/de-tools/ecodent-simulator/pkg/services/session"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
)

type ComputeCmd struct {
	role         string
	region       string
	tier         string
	cases        int
	fee          float64
	ecodentCost  float64
	investment   float64
	profile      string
	profilesPath string
	format       string
	rt           *Runtime
}

func NewComputeCmd(rt *Runtime) *cobra.Command {
	cc := &ComputeCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute monthly and yearly income for a scenario",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.role, "role", string(domain.RoleDentist), "Perspective: dentist or investor")
	cmd.Flags().StringVar(&cc.region, "region", string(domain.RegionDubai), "Market: dubai or paris")
	cmd.Flags().StringVar(&cc.tier, "preset", "", "Preset tier: conservative, realistic or ambitious")
	cmd.Flags().IntVar(&cc.cases, "cases", 0, "Cases per month (0-200)")
	cmd.Flags().Float64Var(&cc.fee, "fee", 0, "Average patient fee per case")
	cmd.Flags().Float64Var(&cc.ecodentCost, "ecodent-cost", 0, "Ecodent workflow cost per case")
	cmd.Flags().Float64Var(&cc.investment, "investment", 0, "Initial investment (investor)")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Start from a saved scenario profile")
	cmd.Flags().StringVar(&cc.profilesPath, "profiles-file", config.DefaultProfilesPath(), "Path to the scenario profiles file")
	cmd.Flags().StringVarP(&cc.format, "format", "o", FormatTable, "Output format: table, text or json")

	return cmd
}

func (cc *ComputeCmd) run(cmd *cobra.Command, _ []string) error {
	s, err := cc.buildSession(cmd)
	if err != nil {
		return err
	}

	in, res := s.Input(), s.Result()
	cc.rt.Logger.Debug().
		Str("role", string(in.Role)).
		Str("region", string(in.Region)).
		Int("cases", in.CasesPerMonth).
		Msg("scenario computed")

	now := time.Now().UTC()
	if cc.format == FormatJSON {
		calc := adapters.MapCalculation(uuid.NewString(), now, in, res, cc.rt.Formatter)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(calc)
	}

	reporter, ok := cc.rt.Reporters[cc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q, expected one of: table, text, json", cc.format)
	}
	return reporter.Handle(adapters.BuildReport(in, res, cc.rt.Formatter, cc.rt.Calculator.Economics(), now))
}

// buildSession replays the flags the way a user would click through the
// simulator: region first (which resets to the realistic preset), then role,
// preset, and finally any field set explicitly.
func (cc *ComputeCmd) buildSession(cmd *cobra.Command) (*session.Session, error) {
	flags := cmd.Flags()

	var s *session.Session
	if cc.profile != "" {
		p, err := cc.loadProfile(cmd.Context())
		if err != nil {
			return nil, err
		}
		s = session.Restore(cc.rt.Calculator, cc.rt.Presets, p.Input)
	} else {
		var err error
		if s, err = session.New(cc.rt.Calculator, cc.rt.Presets); err != nil {
			return nil, err
		}
	}

	if cc.profile == "" || flags.Changed("region") {
		region, err := domain.ParseRegion(cc.region)
		if err != nil {
			return nil, err
		}
		if _, err := s.SelectRegion(region); err != nil {
			return nil, err
		}
	}
	if cc.profile == "" || flags.Changed("role") {
		role, err := domain.ParseRole(cc.role)
		if err != nil {
			return nil, err
		}
		s.SelectRole(role)
	}
	if cc.tier != "" {
		tier, err := domain.ParseTier(cc.tier)
		if err != nil {
			return nil, err
		}
		if _, err := s.ApplyPreset(tier); err != nil {
			return nil, err
		}
	}

	if flags.Changed("cases") {
		s.SetCasesPerMonth(cc.cases)
	}
	if flags.Changed("fee") {
		s.SetPatientFee(cc.fee)
	}
	if flags.Changed("ecodent-cost") {
		s.SetEcodentCost(cc.ecodentCost)
	}
	if flags.Changed("investment") {
		s.SetInitialInvestment(cc.investment)
	}
	return s, nil
}

func (cc *ComputeCmd) loadProfile(ctx context.Context) (*domain.ScenarioProfile, error) {
	registry, err := config.NewRegistry(cc.profilesPath)
	if err != nil {
		return nil, err
	}
	p, err := registry.GetProfile(ctx, cc.profile)
	if err != nil {
		return nil, err
	}
	cc.rt.Logger.Debug().Str("profile", p.String()).Msg("profile loaded")
	return p, nil
}
