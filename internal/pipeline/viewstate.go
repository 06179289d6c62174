package pipeline

// ViewState is what one visitor currently sees: the selected stage and the
// display mode. It is a value; transitions return a new ViewState.
type ViewState struct {
	Stage Stage
	Mode  Mode
}

// NewViewState returns the state shown before any user action.
func NewViewState() ViewState {
	return ViewState{Stage: DefaultStage, Mode: ModeSummary}
}

// SelectStage returns v with s selected. A stage outside the closed set
// leaves v unchanged.
func (v ViewState) SelectStage(s Stage) ViewState {
	if !s.Valid() {
		return v
	}
	v.Stage = s
	return v
}

func (v ViewState) ToggleMode() ViewState {
	v.Mode = v.Mode.Toggle()
	return v
}

// WithMode returns v displaying m.
func (v ViewState) WithMode(m Mode) ViewState {
	if m != ModeSummary && m != ModeDetail {
		return v
	}
	v.Mode = m
	return v
}

// Heading is shown above the content panel in both modes.
type Heading struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Visible is the content block rendered for a ViewState. Exactly one of
// Summary and Detail is set.
type Visible struct {
	Stage    Stage          `json:"-"`
	Mode     Mode           `json:"-"`
	Headline string         `json:"headline"`
	Heading  Heading        `json:"heading"`
	Summary  *SummaryBundle `json:"summary,omitempty"`
	Detail   *DetailBundle  `json:"detail,omitempty"`
}

// VisibleContent derives the block to render from v. It has no side effects.
func VisibleContent(v ViewState) Visible {
	c := ContentFor(v.Stage)
	out := Visible{
		Stage:    v.Stage,
		Mode:     v.Mode,
		Headline: Headline(v.Mode),
		Heading:  Heading{Title: c.Summary.Title, Subtitle: c.Summary.Subtitle},
	}
	if v.Mode == ModeSummary {
		out.Summary = &c.Summary
	} else {
		out.Detail = &c.Detail
	}
	return out
}

// Controller owns a ViewState for a single event loop and notifies
// subscribers after every transition. It is not safe for concurrent use.
type Controller struct {
	state       ViewState
	subscribers []func(ViewState)
}

func NewController(initial ViewState) *Controller {
	return &Controller{state: initial}
}

func (c *Controller) State() ViewState { return c.state }

// Subscribe registers fn to receive the new state after each transition.
func (c *Controller) Subscribe(fn func(ViewState)) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) Select(s Stage) ViewState {
	return c.apply(c.state.SelectStage(s))
}

func (c *Controller) Toggle() ViewState {
	return c.apply(c.state.ToggleMode())
}

func (c *Controller) SetMode(m Mode) ViewState {
	return c.apply(c.state.WithMode(m))
}

func (c *Controller) apply(next ViewState) ViewState {
	c.state = next
	for _, fn := range c.subscribers {
		fn(next)
	}
	return next
}
