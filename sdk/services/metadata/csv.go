// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Columns is the sorted union of every sample key plus "files". No samples
// means no columns.
func Columns(samples []Sample) []string {
	if len(samples) == 0 {
		return nil
	}
	set := map[string]struct{}{KeyFiles: {}}
	for _, s := range samples {
		for k := range s.Attributes {
			set[k] = struct{}{}
		}
	}
	cols := lo.Keys(set)
	sort.Strings(cols)
	return cols
}

// WriteCSV writes the header and one row per sample; missing keys are empty
// cells.
func WriteCSV(w io.Writer, columns []string, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range samples {
		row := make([]string, len(columns))
		for i, c := range columns {
			if c == KeyFiles {
				row[i] = filesCell(s)
				continue
			}
			row[i] = s.Attributes[c]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// filesCell joins the mapped file names. A SAMPLE_ATTRIBUTE tagged "files"
// comes first.
func filesCell(s Sample) string {
	names := lo.Map(s.Files, func(f FileEntry, _ int) string { return f.FileName })
	if v := s.Attributes[KeyFiles]; v != "" {
		names = append([]string{v}, names...)
	}
	return strings.Join(names, FileSeparator)
}
