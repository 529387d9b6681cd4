package domain

import "fmt"

// ScenarioProfile is a named, saved set of inputs from the profiles file.
type ScenarioProfile struct {
	Name  string
	Input ScenarioInput
}

func (p ScenarioProfile) String() string {
	return fmt.Sprintf("%s:%s/%s", p.Name, p.Input.Role, p.Input.Region)
}
