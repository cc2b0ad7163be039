// Package dataset reads and writes tab-separated taxonomy tables.
//
// Source datasets ship as TSV files with a header row naming the
// columns. Tables are held fully in memory; taxonomy releases are
// small (tens of thousands of rows) so streaming is not worth the
// complexity.
package dataset
