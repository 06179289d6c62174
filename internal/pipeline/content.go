package pipeline

import "fmt"

// SummaryBundle is the short, outcome-oriented text for a stage.
type SummaryBundle struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Highlights []string `json:"highlights"`
}

// DetailBundle is the implementation-oriented breakdown for a stage.
type DetailBundle struct {
	What        []string `json:"what"`
	Tech        []string `json:"tech"`
	Reliability []string `json:"reliability"`
}

type StageContent struct {
	Summary SummaryBundle
	Detail  DetailBundle
}

// ContentFor returns the catalog entry for s. Every stage has exactly one
// entry; the switch lists them all so a new stage without content panics in
// the catalog test instead of rendering an empty panel.
func ContentFor(s Stage) StageContent {
	switch s {
	case Source:
		return StageContent{
			Summary: SummaryBundle{
				Title:    "Sources",
				Subtitle: "Apps, APIs, files, streams",
				Highlights: []string{
					"Defined ingestion contracts",
					"Added schema validation",
					"Early data quality checks",
				},
			},
			Detail: DetailBundle{
				What: []string{
					"Designed ingestion contracts (schema + SLAs).",
					"Handled schema drift with quarantine layer.",
				},
				Tech:        []string{"REST APIs", "Batch Files"},
				Reliability: []string{"Validation gates", "Anomaly detection"},
			},
		}
	case Orchestration:
		return StageContent{
			Summary: SummaryBundle{
				Title:    "Azure Data Factory",
				Subtitle: "Orchestration",
				Highlights: []string{
					"Parameterized pipelines",
					"Retry + alerting system",
					"Idempotent runs",
				},
			},
			Detail: DetailBundle{
				What: []string{
					"Modular ADF pipelines with run IDs.",
					"Correlation IDs for lineage.",
				},
				Tech:        []string{"ADF", "Managed Identity"},
				Reliability: []string{"Retries", "Alert routing"},
			},
		}
	case Storage:
		return StageContent{
			Summary: SummaryBundle{
				Title:    "ADLS",
				Subtitle: "Data Lake",
				Highlights: []string{
					"Raw → Bronze → Silver → Gold",
					"Partitioning strategy",
					"Access control + lifecycle rules",
				},
			},
			Detail: DetailBundle{
				What: []string{
					"Layered lake design.",
					"Optimized partitions.",
				},
				Tech:        []string{"ADLS Gen2", "Delta"},
				Reliability: []string{"Immutable raw zone", "Checksum validation"},
			},
		}
	case Transform:
		return StageContent{
			Summary: SummaryBundle{
				Title:    "Databricks",
				Subtitle: "Transformations",
				Highlights: []string{
					"Spark transformations",
					"Incremental processing",
					"Job monitoring",
				},
			},
			Detail: DetailBundle{
				What: []string{
					"Spark joins, dedupe, SCD handling.",
					"MERGE for incremental loads.",
				},
				Tech:        []string{"Databricks", "Spark"},
				Reliability: []string{"Adaptive query execution", "Quality gates"},
			},
		}
	case Warehouse:
		return StageContent{
			Summary: SummaryBundle{
				Title:    "SQL Warehouse",
				Subtitle: "Serving layer",
				Highlights: []string{
					"Star schema modeling",
					"Query tuning",
					"Freshness monitoring",
				},
			},
			Detail: DetailBundle{
				What: []string{
					"Star schema modeling.",
					"Aggregate tables for performance.",
				},
				Tech:        []string{"SQL", "Synapse"},
				Reliability: []string{"Freshness SLA checks"},
			},
		}
	case Presentation:
		return StageContent{
			Summary: SummaryBundle{
				Title:    "BI",
				Subtitle: "Dashboards",
				Highlights: []string{
					"Executive KPIs",
					"Metric standardization",
					"Self-serve analytics",
				},
			},
			Detail: DetailBundle{
				What: []string{
					"Metric layer definition.",
					"Decision-focused dashboards.",
				},
				Tech:        []string{"Power BI"},
				Reliability: []string{"Metric validation tests"},
			},
		}
	}
	panic(fmt.Sprintf("pipeline: no content for stage %d", int(s)))
}
