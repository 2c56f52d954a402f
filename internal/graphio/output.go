// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tiledapsp/apsp"
)

// Output formats accepted by the writers.
const (
	FormatTSV  = "tsv"
	FormatYAML = "yaml"
)

// formatDistance renders +Inf as "inf" and finite values in shortest form.
func formatDistance(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteDistances writes res in format. TSV prints a header row of node IDs
// followed by one row per source; YAML prints a source → target → distance
// mapping with .inf for unreachable pairs.
func WriteDistances(w io.Writer, res *apsp.Result, format string) error {
	switch format {
	case FormatTSV:
		return writeDistancesTSV(w, res)
	case FormatYAML:
		return writeYAML(w, res.Map())
	default:
		return fmt.Errorf("output %q: %w", format, ErrUnsupportedFormat)
	}
}

func writeDistancesTSV(w io.Writer, res *apsp.Result) error {
	bw := bufio.NewWriter(w)
	n := res.Nodes.Len()
	var i, j int
	for j = 0; j < n; j++ {
		bw.WriteByte('\t')
		bw.WriteString(res.Nodes.ID(j))
	}
	bw.WriteByte('\n')
	for i = 0; i < n; i++ {
		row, err := res.Distances.Row(i)
		if err != nil {
			return err
		}
		bw.WriteString(res.Nodes.ID(i))
		for _, v := range row {
			bw.WriteByte('\t')
			bw.WriteString(formatDistance(v))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteCloseness writes scores sorted by node ID.
func WriteCloseness(w io.Writer, scores map[string]float64, format string) error {
	switch format {
	case FormatTSV:
		ids := make([]string, 0, len(scores))
		for id := range scores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		bw := bufio.NewWriter(w)
		for _, id := range ids {
			fmt.Fprintf(bw, "%s\t%s\n", id, strconv.FormatFloat(scores[id], 'g', -1, 64))
		}
		return bw.Flush()
	case FormatYAML:
		return writeYAML(w, scores)
	default:
		return fmt.Errorf("output %q: %w", format, ErrUnsupportedFormat)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return enc.Close()
}
