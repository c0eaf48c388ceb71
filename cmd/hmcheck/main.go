// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// hmcheck infers the types of the terms in YAML program files.
//
//	hmcheck [-linked] [-canonical] [-j N] [-deps] [-color=auto|always|never] file.yaml...
//
// Each term is printed as `name : type`, or `name : error: ...` when inference fails. The exit status is 1
// if inference failed for any term.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/predef"
	"github.com/wdamron/hm/program"
	"github.com/wdamron/hm/types"
)

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Results go to stdout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

type options struct {
	linked    bool
	canonical bool
	deps      bool
	workers   int
	color     bool
}

const (
	colorReset = "\x1b[0m"
	colorName  = "\x1b[1m"
	colorError = "\x1b[31m"
)

func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("hmcheck", flag.ContinueOnError)
	fs.SetOutput(log.Writer())
	var opts options
	fs.BoolVar(&opts.linked, "linked", false, "use linked unification")
	fs.BoolVar(&opts.canonical, "canonical", false, "rename type-variables to 'a, 'b, ... in printed types")
	fs.BoolVar(&opts.deps, "deps", false, "print the free identifiers referenced by each term")
	fs.IntVar(&opts.workers, "j", 0, "maximum number of terms inferred concurrently (0 for GOMAXPROCS)")
	colorMode := fs.String("color", "auto", "colorize output: auto, always, or never")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		log.Println("hmcheck: no program files")
		fs.Usage()
		return 2
	}
	switch *colorMode {
	case "always":
		opts.color = true
	case "never":
		opts.color = false
	case "auto":
		opts.color = isTerminal(stdout)
	default:
		log.Printf("hmcheck: invalid color mode %q", *colorMode)
		return 2
	}

	failed := false
	for _, path := range fs.Args() {
		p, err := program.Load(path)
		if err != nil {
			log.Printf("hmcheck: %v", err)
			failed = true
			continue
		}
		if !check(ctx, p, opts, stdout) {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func check(ctx context.Context, p *program.Program, opts options, stdout io.Writer) bool {
	newContext := func() *hm.InferenceContext {
		ti := hm.NewContext()
		ti.EnableLinkedUnification(opts.linked)
		return ti
	}
	ok := true
	for _, r := range p.Check(ctx, predef.Env(), newContext, opts.workers) {
		term := p.Terms[r.Index]
		name := term.Name
		if opts.color {
			name = colorName + name + colorReset
		}
		if r.Err != nil {
			ok = false
			msg := "error: " + r.Err.Error()
			if r.Invalid != nil && r.Invalid != term.Expr {
				msg += " (in " + ast.ExprString(r.Invalid) + ")"
			}
			if opts.color {
				msg = colorError + msg + colorReset
			}
			fmt.Fprintf(stdout, "%s : %s\n", name, msg)
			continue
		}
		t := types.TypeString(r.Type)
		if opts.canonical {
			t = types.CanonicalString(r.Type)
		}
		fmt.Fprintf(stdout, "%s : %s\n", name, t)
		if opts.deps {
			if free := hm.FreeNames(term.Expr); len(free) > 0 {
				fmt.Fprintf(stdout, "  uses %s\n", strings.Join(free, ", "))
			}
		}
	}
	return ok
}
