// SPDX-License-Identifier: MIT
// Package: latmax/bipartite
//
// load.go — delimited edge-list reader.
//
// Each record is "left,right,weight" (delimiter configurable). Labels are
// arbitrary strings; each side assigns dense indices in order of first
// appearance. A missing weight column means weight 1.

package bipartite

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadRecord indicates a malformed edge-list record.
var ErrBadRecord = errors.New("bipartite: malformed edge record")

// Labeled is a graph together with the external labels of its vertices.
type Labeled struct {
	*Graph

	// LeftLabels[s] and RightLabels[t] are the labels read from input.
	LeftLabels  []string
	RightLabels []string
}

// ReadEdgeList parses an edge list from r.
func ReadEdgeList(r io.Reader, opts ...Option) (*Labeled, error) {
	cfg := newConfig(opts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.Comment = cfg.comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	type rawEdge struct {
		s, t int
		w    float64
	}
	var (
		leftIdx  = map[string]int{}
		rightIdx = map[string]int{}
		out      = &Labeled{}
		edges    []rawEdge
	)
	index := func(m map[string]int, labels *[]string, key string) int {
		if i, ok := m[key]; ok {
			return i
		}
		i := len(*labels)
		m[key] = i
		*labels = append(*labels, key)
		return i
	}

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: record %d: %w", line, err)
		}
		if len(rec) < 2 || len(rec) > 3 {
			return nil, fmt.Errorf("ReadEdgeList: record %d has %d fields: %w", line, len(rec), ErrBadRecord)
		}
		w := 1.0
		if len(rec) == 3 {
			w, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadEdgeList: record %d weight %q: %w", line, rec[2], ErrBadRecord)
			}
		}
		edges = append(edges, rawEdge{
			s: index(leftIdx, &out.LeftLabels, strings.TrimSpace(rec[0])),
			t: index(rightIdx, &out.RightLabels, strings.TrimSpace(rec[1])),
			w: w,
		})
	}

	g, err := NewGraph(len(out.LeftLabels), len(out.RightLabels))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.s, e.t, e.w); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %s–%s: %w", out.LeftLabels[e.s], out.RightLabels[e.t], err)
		}
	}
	out.Graph = g

	return out, nil
}
