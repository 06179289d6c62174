// Package pipeline holds the view-state model behind the interactive data
// pipeline diagram: the fixed set of stages, the content shown for each stage
// in either display mode, and the pure transitions between view states.
package pipeline

// Stage is one step of the six-step pipeline illustration. The set is closed;
// values outside [Source, Presentation] are never produced by this package.
type Stage int

const (
	Source Stage = iota
	Orchestration
	Storage
	Transform
	Warehouse
	Presentation

	numStages
)

type stageInfo struct {
	id    string
	label string
	hint  string
}

var stageTable = [numStages]stageInfo{
	Source:        {id: "source", label: "Source", hint: "Apps, APIs, files"},
	Orchestration: {id: "orchestration", label: "ADF", hint: "Scheduling + retries"},
	Storage:       {id: "storage", label: "ADLS", hint: "Layered data lake"},
	Transform:     {id: "transform", label: "Databricks", hint: "Spark jobs"},
	Warehouse:     {id: "warehouse", label: "SQL DW", hint: "Serving layer"},
	Presentation:  {id: "presentation", label: "BI", hint: "Dashboards"},
}

// DefaultStage is selected before the visitor clicks anything.
const DefaultStage = Orchestration

// Stages returns every stage in diagram order.
func Stages() []Stage {
	out := make([]Stage, 0, numStages)
	for s := Source; s < numStages; s++ {
		out = append(out, s)
	}
	return out
}

func (s Stage) Valid() bool { return s >= Source && s < numStages }

// ID is the stable identifier used in URLs and analytics rows.
func (s Stage) ID() string {
	if !s.Valid() {
		return ""
	}
	return stageTable[s].id
}

func (s Stage) Label() string {
	if !s.Valid() {
		return ""
	}
	return stageTable[s].label
}

func (s Stage) Hint() string {
	if !s.Valid() {
		return ""
	}
	return stageTable[s].hint
}

func (s Stage) String() string { return s.ID() }

// ParseStage resolves an identifier received from outside the process.
func ParseStage(id string) (Stage, bool) {
	for s := Source; s < numStages; s++ {
		if stageTable[s].id == id {
			return s, true
		}
	}
	return 0, false
}

// Mode selects which content bundle is rendered for the selected stage.
type Mode int

const (
	ModeSummary Mode = iota
	ModeDetail
)

func (m Mode) ID() string {
	if m == ModeDetail {
		return "detail"
	}
	return "summary"
}

// Label is the caption of the button that switches to m.
func (m Mode) Label() string {
	if m == ModeDetail {
		return "Engineer View"
	}
	return "Recruiter View"
}

func (m Mode) String() string { return m.ID() }

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDetail {
		return ModeSummary
	}
	return ModeDetail
}

// ParseMode accepts the mode identifiers as well as the audience names used
// by the page buttons.
func ParseMode(v string) (Mode, bool) {
	switch v {
	case "summary", "recruiter":
		return ModeSummary, true
	case "detail", "engineer":
		return ModeDetail, true
	}
	return 0, false
}

// Headline describes the active mode above the mode switch.
func Headline(m Mode) string {
	if m == ModeDetail {
		return "Engineer Mode: Deep technical breakdown"
	}
	return "Recruiter Mode: Impact-first summary"
}
