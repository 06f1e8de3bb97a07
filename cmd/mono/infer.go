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

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/mono"
	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/syntax"
	"github.com/wdamron/mono/types"
)

type inferOptions struct {
	Exprs       []string
	Prelude     string
	Constraints bool
	Subst       bool
	OccursCheck bool
	Jobs        int
}

type input struct {
	Name string
	Src  string
}

type result struct {
	sol *mono.Solution
	err error
}

func inferCmd(cfg *Config) *cobra.Command {
	var opts inferOptions

	cmd := &cobra.Command{
		Use:   "infer [flags] [file...]",
		Short: "Infer the type of each input",
		Long: `Infer the type of each input: every file argument, every -e expression,
or standard input when neither is given.`,
		Example: `  # Infer the type of an expression
  mono infer -e 'let id = fun x -> x in (id 5, id 1)'

  # Infer several files concurrently, with declarations from a prelude
  mono infer --prelude prelude.toml --jobs 4 a.mono b.mono

  # Show generated constraints and the solved substitution
  mono infer --constraints --subst -e 'fun f -> f 1'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

			env := mono.NewTypeEnv()
			if opts.Prelude != "" {
				prelude, err := LoadPrelude(opts.Prelude)
				if err != nil {
					return err
				}
				if env, err = prelude.Env(); err != nil {
					return err
				}
				opts.OccursCheck = opts.OccursCheck || prelude.OccursCheck
				logger.Debug("loaded prelude", "path", opts.Prelude, "bindings", env.Len())
			}

			inputs, err := readInputs(cmd.InOrStdin(), opts.Exprs, args)
			if err != nil {
				return err
			}
			return runInfer(cmd.Context(), cmd.OutOrStdout(), logger, env, inputs, &opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Exprs, "expr", "e", nil, "Expression to infer (may be repeated)")
	cmd.Flags().StringVar(&opts.Prelude, "prelude", "", "TOML file declaring the types of predefined identifiers")
	cmd.Flags().BoolVar(&opts.Constraints, "constraints", false, "Print the generated constraints")
	cmd.Flags().BoolVar(&opts.Subst, "subst", false, "Print the solved substitution")
	cmd.Flags().BoolVar(&opts.OccursCheck, "occurs-check", false, "Reject infinite types")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of inputs to infer concurrently")
	return cmd
}

func readInputs(stdin io.Reader, exprs, files []string) ([]input, error) {
	var inputs []input
	for i, src := range exprs {
		name := "-e"
		if len(exprs) > 1 {
			name += "#" + strconv.Itoa(i+1)
		}
		inputs = append(inputs, input{Name: name, Src: src})
	}
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read input")
		}
		inputs = append(inputs, input{Name: path, Src: string(src)})
	}
	if len(inputs) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read standard input")
		}
		inputs = append(inputs, input{Name: "<stdin>", Src: string(src)})
	}
	return inputs, nil
}

// runInfer infers every input concurrently, then prints results in input order. A failed
// input does not stop the others.
func runInfer(ctx context.Context, w io.Writer, logger *slog.Logger, env *mono.TypeEnv, inputs []input, opts *inferOptions) error {
	results := make([]result, len(inputs))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(opts.Jobs, 1))
	for i, in := range inputs {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = inferInput(logger.With("input", in.Name), env, in, opts.OccursCheck)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, in := range inputs {
		r := results[i]
		if len(inputs) == 1 {
			if r.err != nil {
				return errors.Wrap(r.err, in.Name)
			}
			printSolution(w, "", r.sol, opts)
			return nil
		}
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", in.Name, r.err)
			continue
		}
		printSolution(w, in.Name+": ", r.sol, opts)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func inferInput(logger *slog.Logger, env *mono.TypeEnv, in input, occursCheck bool) result {
	expr, err := syntax.ParseExpr(in.Src)
	if err != nil {
		return result{err: err}
	}
	logger.Debug("inferring", "expr", ast.ExprString(expr))

	ctx := mono.NewContext()
	ctx.SetLogger(logger)
	ctx.EnableOccursCheck(occursCheck)
	sol, err := ctx.Solve(expr, env)
	if err != nil {
		if invalid := ctx.InvalidExpr(); invalid != nil && invalid != expr {
			err = errors.Wrapf(err, "in %s", ast.ExprString(invalid))
		}
		return result{err: err}
	}
	logger.Debug("inferred", "type", types.TypeString(sol.Type), "constraints", len(sol.Constraints))
	return result{sol: sol}
}

func printSolution(w io.Writer, prefix string, sol *mono.Solution, opts *inferOptions) {
	fmt.Fprintf(w, "%s%s\n", prefix, types.TypeString(sol.Type))
	if opts.Constraints {
		fmt.Fprintln(w, "  constraints:")
		for _, c := range sol.Constraints {
			fmt.Fprintf(w, "    %s\n", c)
		}
	}
	if opts.Subst {
		fmt.Fprintf(w, "  subst: %s\n", sol.Subst)
	}
}

func checkTypeCmd() *cobra.Command {
	var showVars bool

	cmd := &cobra.Command{
		Use:     "check-type TYPE",
		Short:   "Parse a type annotation and print its canonical form",
		Example: `  mono check-type --vars 'Int -> (Bool, a)'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := syntax.ParseType(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid type")
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, types.TypeString(t))
			if showVars {
				for _, name := range types.SortedFreeVars(t) {
					fmt.Fprintf(w, "  var %s\n", name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showVars, "vars", false, "Print the type-variables within the type")
	return cmd
}
