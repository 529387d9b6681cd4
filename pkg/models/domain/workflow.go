package domain

type WorkflowStep struct {
	ID      string
	Title   string
	Bullets []string
}
