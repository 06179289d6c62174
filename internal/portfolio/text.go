package portfolio

var (
	AboutMe = `I build data platforms that people trust: ingestion with contracts, lakes with clear
	layers, Spark jobs that are safe to rerun, and dashboards whose numbers match the finance
	report. Click through the pipeline below to see what I did at each stage, in as much detail
	as you want.`

	LakehouseBlueprint = `A reference lakehouse on Azure: ADF orchestration, ADLS Gen2 medallion
	layout and Databricks Delta tables, deployable from a single parameter file.`

	SparkQualityGates = `Declarative data quality checks for Spark jobs. Rules run as a gate
	between Silver and Gold and quarantine failing batches instead of publishing them.`

	PipelineObservability = `Run-level lineage and alerting for batch pipelines: correlation IDs
	from ADF through Databricks into Log Analytics, with freshness SLOs per table.`

	SQLWarehousePlaybook = `Patterns for the serving layer: star schemas, aggregate tables,
	incremental refresh and the query tuning notes that made dashboards load in seconds.`
)
