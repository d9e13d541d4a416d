// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output renders command results as plain tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Format identifies an output format.
type Format string

const (
	OutputTable Format = "table"
	OutputJSON  Format = "json"
)

// OutputOptions carries the --output flag state for a command.
type OutputOptions struct {
	raw    string
	format Format
}

// AddOutputFlags registers the --output flag on the command with the given
// default format.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def Format) {
	o.format = def
	cmd.Flags().StringVarP(&o.raw, "output", "o", string(def), "Output format: table or json")
}

// Resolve validates the flag value. Call it at the top of RunE.
func (o *OutputOptions) Resolve() error {
	switch strings.ToLower(strings.TrimSpace(o.raw)) {
	case "", string(o.format):
		// keep default
	case string(OutputTable):
		o.format = OutputTable
	case string(OutputJSON):
		o.format = OutputJSON
	default:
		return fmt.Errorf("unknown output format %q (choose table or json)", o.raw)
	}
	return nil
}

// Is reports whether the resolved format matches f.
func (o *OutputOptions) Is(f Format) bool {
	return o.format == f
}

// JSON writes v to stdout as indented JSON.
func JSON(v any) error {
	return EncodeJSON(os.Stdout, v)
}

// EncodeJSON writes v to w as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table accumulates rows for aligned text output.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to stdout.
func (t *Table) Render() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.headers, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
