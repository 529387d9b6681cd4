package workflow

import (
	"slices"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
)

var steps = []domain.WorkflowStep{
	{
		ID:    "lead",
		Title: "1. Lead & Case Arrival",
		Bullets: []string{
			"Patient is referred or generated as a lead for your clinic.",
			"You keep the relationship with the patient from A to Z.",
		},
	},
	{
		ID:    "scans",
		Title: "2. CBCT + Intraoral Scans",
		Bullets: []string{
			"CBCT and intraoral scans are sent/uploaded to Ecodent360.",
			"All imaging & data processing handled by our digital team.",
		},
	},
	{
		ID:    "planning",
		Title: "3. 3D Planning & Guided Surgery",
		Bullets: []string{
			"Prosthetic-driven 3D planning of the implants.",
			"Safe entry points, angulation and depth mapping validated.",
			"Guided surgery plan prepared and approved with you.",
		},
	},
	{
		ID:    "kit",
		Title: "4. Surgical Kit, Guides & Implants",
		Bullets: []string{
			"Surgical guide is designed and 3D-printed.",
			"MSI France implants + components prepared (scan bodies, MU, Ti-base, screws…).",
			"Full kit is delivered ready-to-use for the surgery day.",
		},
	},
	{
		ID:    "surgery",
		Title: "5. Surgery in Your Clinic",
		Bullets: []string{
			"You perform the surgery with the digital plan and full kit.",
			"Guided protocol reduces errors and chair time.",
		},
	},
	{
		ID:    "lab",
		Title: "6. Post-Surgery – Lab & Crown",
		Bullets: []string{
			"Post-op STL / CAD files managed with the lab.",
			"Crown or prosthetic work is delivered, plug-and-play on Ecodent360 components.",
		},
	},
}

var included = []string{
	"CBCT + IOS processing",
	"3D implant planning",
	"Guided surgery design",
	"Surgical guides & drills",
	"MSI France implants",
	"Abutments, scan bodies, Ti-base",
	"STL & CAD files for crowns",
	"Lab workflows managed for you",
}

var avoidedCosts = []string{
	"No CBCT to buy",
	"No scanner to buy",
	"No software licenses",
	"No digital planning time",
	"No lab communication workload",
	"No hidden costs",
}

// Catalog serves the static process content shown next to a scenario.
type Catalog interface {
	Steps() []domain.WorkflowStep
	Included() []string
	AvoidedCosts() []string
}

type staticCatalog struct{}

func NewCatalog() Catalog {
	return staticCatalog{}
}

func (staticCatalog) Steps() []domain.WorkflowStep {
	out := make([]domain.WorkflowStep, len(steps))
	for i, s := range steps {
		s.Bullets = slices.Clone(s.Bullets)
		out[i] = s
	}
	return out
}

func (staticCatalog) Included() []string {
	return slices.Clone(included)
}

func (staticCatalog) AvoidedCosts() []string {
	return slices.Clone(avoidedCosts)
}
