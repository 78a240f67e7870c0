// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/latmax/algo"
)

// kindsValue is a comma-separated algorithm list flag; labels are resolved
// as they are parsed.
type kindsValue struct {
	kinds []algo.Kind
}

var _ pflag.Value = (*kindsValue)(nil)

func (v *kindsValue) String() string {
	labels := make([]string, len(v.kinds))
	for i, k := range v.kinds {
		labels[i] = k.String()
	}

	return strings.Join(labels, ",")
}

func (v *kindsValue) Set(s string) error {
	ks, err := algo.ParseKinds(strings.Split(s, ","))
	if err != nil {
		return err
	}
	v.kinds = ks

	return nil
}

func (v *kindsValue) Type() string { return "algorithms" }

// labels returns the configured labels, or nil when the flag was not set.
func (v *kindsValue) labels() []string {
	if len(v.kinds) == 0 {
		return nil
	}

	return strings.Split(v.String(), ",")
}
