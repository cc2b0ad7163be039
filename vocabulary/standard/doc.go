// Package standard declares the field-rename tables for the generic
// standards ingestion pass. Each Standard names a source dataset and
// the canonical column names its output carries. The tables are data
// only; the pipeline drives the actual copy.
package standard
