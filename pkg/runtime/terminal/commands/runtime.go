package commands

import (
	"github.com/de-tools/ecodent-simulator/pkg/display"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/workflow"
	"github.com/rs/zerolog"
)

// ReportHandler renders a report to the command output.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// Runtime carries the dependencies built once the root flags are parsed.
// Commands hold a pointer and read it at run time.
type Runtime struct {
	Calculator *scenario.Calculator
	Presets    preset.Service
	Catalog    workflow.Catalog
	Formatter  *display.Formatter
	Logger     zerolog.Logger
	Reporters  map[string]ReportHandler
}
