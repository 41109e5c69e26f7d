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

// Command mligen writes z_spec_api.go for the conv or pool package: one
// exported entry point per specialization row, named after the kernel family
// and the row. It reads the tables from the compiled package, so adding a row
// to a table and re-running go generate is enough to publish it.
//
// Usage:
//
//	mligen [-o file] [-pkg name]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	output := pflag.StringP("output", "o", "z_spec_api.go", "file to write")
	pkg := pflag.String("pkg", "conv", "package clause of the generated file")
	verbose := pflag.BoolP("verbose", "v", false, "log every generated entry point")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "mligen: %v\n", err)
		os.Exit(1)
	}
}

func run(output, pkg string) error {
	src, err := Generate(pkg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	slog.Info("mligen: wrote entry points", "file", output, "bytes", len(src))
	return nil
}
