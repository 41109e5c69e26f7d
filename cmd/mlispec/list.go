// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mli/mli/contrib/conv"
)

func newListCmd() *cobra.Command {
	var core string
	cmd := &cobra.Command{
		Use:   "list [family...]",
		Short: "Print specialization tables in dispatch order",
		RunE: func(cmd *cobra.Command, args []string) error {
			families := conv.Families
			if len(args) > 0 {
				families = nil
				for _, a := range args {
					f, err := parseFamily(a)
					if err != nil {
						return err
					}
					families = append(families, f)
				}
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, f := range families {
				rows := f.Table()
				if core != "" {
					rows = lo.Filter(rows, func(s conv.Spec, _ int) bool { return s.Core.String() == core })
				}
				fmt.Fprintf(w, "%s (%d rows)\n", f, len(rows))
				fmt.Fprintln(w, "  #\tname\tkernel\tchannels\tstride\tpadding\tcore")
				for i, s := range rows {
					fmt.Fprintf(w, "  %d\t%s\t%sx%s\t%s\t%s\t%s\t%s\n", i, s.Name,
						wildcard(s.KernelH), wildcard(s.KernelW), wildcard(s.Channels),
						wildcard(s.Stride), paddingName(s.Padding), s.Core)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&core, "core", "", "only rows running this composition core, e.g. conv2d_chw_str1_fixed")
	return cmd
}

func newSelectCmd() *cobra.Command {
	var (
		shape    shapeFlags
		channels int
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Show the row the dispatcher picks for a call shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, kh, kw, cfg, err := shape.config()
			if err != nil {
				return err
			}
			dh, dw := cfg.Dilations()
			g := conv.Geometry{
				KernelW:   kw,
				KernelH:   kh,
				Channels:  channels,
				StrideW:   cfg.StrideWidth,
				StrideH:   cfg.StrideHeight,
				PadTop:    cfg.PaddingTop,
				PadBottom: cfg.PaddingBottom,
				PadLeft:   cfg.PaddingLeft,
				PadRight:  cfg.PaddingRight,
				Dilated:   dh > 1 || dw > 1,
			}
			s := conv.SelectGeometry(f, g)
			matching := lo.Filter(f.Table(), func(r conv.Spec, _ int) bool { return r.Matches(g) })
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s (%s)\n", f, s.Name, s.Core)
			fmt.Fprintf(out, "also matching: %v\n", lo.Map(matching[1:], func(r conv.Spec, _ int) string { return r.Name }))
			return nil
		},
	}
	shape.register(cmd.Flags())
	cmd.Flags().IntVarP(&channels, "channels", "c", 4, "input channels")
	return cmd
}
