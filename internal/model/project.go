package model

// Project ties a box list, solver settings, and an optional result together
// for save/load.
type Project struct {
	Name     string        `json:"name"`
	Boxes    []Box         `json:"boxes"`
	Settings SolveSettings `json:"settings"`
	Result   Stack         `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Boxes:    []Box{},
		Settings: DefaultSettings(),
	}
}
