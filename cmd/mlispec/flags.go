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
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/contrib/conv"
)

// parseFamily resolves a family by its kernel name.
func parseFamily(name string) (conv.Family, error) {
	f, ok := lo.Find(conv.Families, func(f conv.Family) bool { return f.String() == name })
	if !ok {
		names := lo.Map(conv.Families, func(f conv.Family, _ int) string { return f.String() })
		return 0, fmt.Errorf("unknown family %q (one of %s)", name, strings.Join(names, ", "))
	}
	return f, nil
}

// parseKernel parses "HxW" or a single "K" for a square kernel.
func parseKernel(s string) (kh, kw int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("kernel %q: want HxW", s)
	}
	dims := make([]int, len(parts))
	for i, p := range parts {
		dims[i], err = strconv.Atoi(strings.TrimSpace(p))
		if err != nil || dims[i] <= 0 {
			return 0, 0, fmt.Errorf("kernel %q: want positive HxW", s)
		}
	}
	if len(dims) == 1 {
		return dims[0], dims[0], nil
	}
	return dims[0], dims[1], nil
}

// shapeFlags are the call-shape flags shared by select and verify.
type shapeFlags struct {
	family   string
	kernel   string
	stride   []int
	padding  []int
	dilation []int
}

func (s *shapeFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.family, "family", "f", "conv2d_chw_fx8", "kernel family")
	fs.StringVarP(&s.kernel, "kernel", "k", "3x3", "kernel size HxW")
	fs.IntSliceVarP(&s.stride, "stride", "s", []int{1}, "stride: one value or H,W")
	fs.IntSliceVarP(&s.padding, "padding", "p", []int{1}, "padding: one value, V,H or top,bottom,left,right")
	fs.IntSliceVar(&s.dilation, "dilation", []int{1}, "dilation: one value or H,W")
}

func pair(name string, v []int) (a, b int, err error) {
	switch len(v) {
	case 1:
		return v[0], v[0], nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, fmt.Errorf("--%s takes one or two values, got %d", name, len(v))
}

// config builds the convolution config the flags describe.
func (s *shapeFlags) config() (conv.Family, int, int, mli.Conv2DConfig, error) {
	var cfg mli.Conv2DConfig
	f, err := parseFamily(s.family)
	if err != nil {
		return 0, 0, 0, cfg, err
	}
	kh, kw, err := parseKernel(s.kernel)
	if err != nil {
		return 0, 0, 0, cfg, err
	}
	if cfg.StrideHeight, cfg.StrideWidth, err = pair("stride", s.stride); err != nil {
		return 0, 0, 0, cfg, err
	}
	if cfg.DilationHeight, cfg.DilationWidth, err = pair("dilation", s.dilation); err != nil {
		return 0, 0, 0, cfg, err
	}
	switch p := s.padding; len(p) {
	case 1:
		cfg.PaddingTop, cfg.PaddingBottom, cfg.PaddingLeft, cfg.PaddingRight = p[0], p[0], p[0], p[0]
	case 2:
		cfg.PaddingTop, cfg.PaddingBottom, cfg.PaddingLeft, cfg.PaddingRight = p[0], p[0], p[1], p[1]
	case 4:
		cfg.PaddingTop, cfg.PaddingBottom, cfg.PaddingLeft, cfg.PaddingRight = p[0], p[1], p[2], p[3]
	default:
		return 0, 0, 0, cfg, fmt.Errorf("--padding takes 1, 2 or 4 values, got %d", len(p))
	}
	return f, kh, kw, cfg, nil
}

func paddingName(p conv.Padding) string {
	switch p {
	case conv.PadNone:
		return "none"
	case conv.PadKernel:
		return "kernel"
	default:
		return "any"
	}
}

func wildcard(v int) string {
	if v == 0 {
		return "*"
	}
	return strconv.Itoa(v)
}
