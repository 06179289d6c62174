// Package portfolio holds the static copy of the site: who the owner is,
// which projects are featured and how to get in touch.
package portfolio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownProject = errors.New("unknown project")

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the hero section and contact block.
type Profile struct {
	Name     string `yaml:"name"`
	Short    string `yaml:"short_name"`
	Role     string `yaml:"role"`
	Tagline  string `yaml:"tagline"`
	About    string `yaml:"about"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
	Links    []Link `yaml:"links"`
}

// ArchNode is a box in a project architecture diagram. Column and Row place
// it on the diagram grid.
type ArchNode struct {
	ID     string
	Label  string
	Column int
	Row    int
}

type ArchEdge struct {
	From string
	To   string
}

type Metric struct {
	Value string
	Label string
}

type Project struct {
	Slug    string
	Name    string
	Summary string
	RepoURL string
	Tech    []string
	Metrics []Metric
	Nodes   []ArchNode
	Edges   []ArchEdge
}

// Node returns the architecture node with the given id.
func (p Project) Node(id string) (ArchNode, bool) {
	for _, n := range p.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return ArchNode{}, false
}

func DefaultProfile() Profile {
	return Profile{
		Name:     "Guna Durga Prashanth Thota",
		Short:    "Guna Thota",
		Role:     "Data Engineer",
		Tagline:  "Azure data platforms, built to be rerun safely.",
		About:    strings.Join(strings.Fields(AboutMe), " "),
		Email:    "guna.thota.dev@gmail.com",
		Location: "United States",
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/guna-thota"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/guna-thota"},
		},
	}
}

var projects = []Project{
	{
		Slug:    "lakehouse-blueprint",
		Name:    "lakehouse-blueprint",
		Summary: LakehouseBlueprint,
		RepoURL: "https://github.com/guna-thota/lakehouse-blueprint",
		Tech:    []string{"ADF", "ADLS Gen2", "Databricks", "Delta"},
		Metrics: []Metric{{Value: "3", Label: "lake layers"}, {Value: "1", Label: "parameter file"}},
		Nodes: []ArchNode{
			{ID: "src", Label: "Sources", Column: 0, Row: 0},
			{ID: "adf", Label: "ADF", Column: 1, Row: 0},
			{ID: "bronze", Label: "Bronze", Column: 2, Row: 0},
			{ID: "silver", Label: "Silver", Column: 3, Row: 0},
			{ID: "gold", Label: "Gold", Column: 4, Row: 0},
			{ID: "dbx", Label: "Databricks", Column: 3, Row: 1},
		},
		Edges: []ArchEdge{
			{From: "src", To: "adf"},
			{From: "adf", To: "bronze"},
			{From: "bronze", To: "silver"},
			{From: "silver", To: "gold"},
			{From: "dbx", To: "silver"},
		},
	},
	{
		Slug:    "spark-quality-gates",
		Name:    "spark-quality-gates",
		Summary: SparkQualityGates,
		RepoURL: "https://github.com/guna-thota/spark-quality-gates",
		Tech:    []string{"Spark", "Delta", "Python"},
		Metrics: []Metric{{Value: "0", Label: "bad batches published"}, {Value: "40+", Label: "rules"}},
		Nodes: []ArchNode{
			{ID: "silver", Label: "Silver", Column: 0, Row: 0},
			{ID: "gate", Label: "Quality gate", Column: 1, Row: 0},
			{ID: "gold", Label: "Gold", Column: 2, Row: 0},
			{ID: "quarantine", Label: "Quarantine", Column: 1, Row: 1},
		},
		Edges: []ArchEdge{
			{From: "silver", To: "gate"},
			{From: "gate", To: "gold"},
			{From: "gate", To: "quarantine"},
		},
	},
	{
		Slug:    "pipeline-observability",
		Name:    "pipeline-observability",
		Summary: PipelineObservability,
		RepoURL: "https://github.com/guna-thota/pipeline-observability",
		Tech:    []string{"ADF", "Databricks", "Log Analytics", "KQL"},
		Metrics: []Metric{{Value: "<5 min", Label: "time to alert"}},
		Nodes: []ArchNode{
			{ID: "adf", Label: "ADF run", Column: 0, Row: 0},
			{ID: "dbx", Label: "Databricks job", Column: 1, Row: 0},
			{ID: "logs", Label: "Log Analytics", Column: 2, Row: 0},
			{ID: "alerts", Label: "Alerts", Column: 3, Row: 0},
		},
		Edges: []ArchEdge{
			{From: "adf", To: "dbx"},
			{From: "dbx", To: "logs"},
			{From: "adf", To: "logs"},
			{From: "logs", To: "alerts"},
		},
	},
	{
		Slug:    "sql-warehouse-playbook",
		Name:    "sql-warehouse-playbook",
		Summary: SQLWarehousePlaybook,
		RepoURL: "https://github.com/guna-thota/sql-warehouse-playbook",
		Tech:    []string{"SQL", "Synapse", "Power BI"},
		Metrics: []Metric{{Value: "10x", Label: "faster dashboards"}},
		Nodes: []ArchNode{
			{ID: "gold", Label: "Gold tables", Column: 0, Row: 0},
			{ID: "facts", Label: "Facts + dims", Column: 1, Row: 0},
			{ID: "aggs", Label: "Aggregates", Column: 2, Row: 0},
			{ID: "bi", Label: "Power BI", Column: 3, Row: 0},
		},
		Edges: []ArchEdge{
			{From: "gold", To: "facts"},
			{From: "facts", To: "aggs"},
			{From: "aggs", To: "bi"},
		},
	},
}

// Projects returns the featured projects in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

func ProjectBySlug(slug string) (Project, error) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %q", ErrUnknownProject, slug)
}

// LoadProfile reads a YAML profile from path and overlays it on
// DefaultProfile. An empty path yields the default; a path that does not
// exist is an error.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading profile: %w", err)
	}

	var override Profile
	if err := yaml.Unmarshal(data, &override); err != nil {
		return p, fmt.Errorf("parsing profile: %w", err)
	}
	p.merge(override)
	return p, nil
}

func (p *Profile) merge(o Profile) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Name, o.Name)
	set(&p.Short, o.Short)
	set(&p.Role, o.Role)
	set(&p.Tagline, o.Tagline)
	set(&p.About, o.About)
	set(&p.Email, o.Email)
	set(&p.Location, o.Location)
	if len(o.Links) > 0 {
		p.Links = o.Links
	}
}

// MailTo is the contact link for the profile e-mail.
func (p Profile) MailTo() string {
	return "mailto:" + p.Email
}
