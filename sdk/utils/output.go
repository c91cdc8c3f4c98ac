// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"sigs.k8s.io/yaml"
)

const (
	FormatShort = "short"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatShort
	}
}

// Table is the short rendering of a command result.
type Table struct {
	Header []string
	Rows   [][]string
}

// PrintOutput writes v as JSON or YAML, or table as a borderless table for
// the short format.
func PrintOutput(w io.Writer, format string, v any, table Table, args ...string) error {
	switch TranslateFormat(format) {
	case FormatJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("json marshal failed: %w", err)
		}
		_, err = fmt.Fprintln(w, PrettyJSON(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("yaml marshal failed: %w", err)
		}
		PrintCommentForYaml(w, args...)
		_, err = w.Write(b)
		return err
	default:
		printTable(w, table)
		return nil
	}
}

func printTable(w io.Writer, t Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(t.Header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(t.Rows)
	table.Render()
}

func PrintCommentForYaml(w io.Writer, args ...string) {
	var parts []string
	for _, s := range args {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "# with parameters: %v\n", strings.Join(parts, " "))
	}
}

func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b)
	}
	return out.String()
}
