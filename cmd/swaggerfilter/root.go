/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"io"

	"github.com/moby/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/suparena/swaggerfilter"
	"github.com/suparena/swaggerfilter/config"
	"github.com/suparena/swaggerfilter/errors"
	"github.com/suparena/swaggerfilter/processor"
	"github.com/suparena/swaggerfilter/registry"
)

type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *logrus.Logger
}

type rootOptions struct {
	verbose       bool
	envFile       string
	listLeafTypes bool
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{
		in:     in,
		out:    out,
		errOut: errOut,
		logger: config.Config{LogLevel: "info", LogFormat: config.FormatText}.NewLogger(errOut, false),
	}
}

// execute runs the root command and returns the process exit status.
func (c *cli) execute(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := c.newRootCommand()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		c.logger.Error(err.Error())
		return errors.ExitCode(err)
	}
	return 0
}

func (c *cli) newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	info := swaggerfilter.GetVersionInfo()

	cmd := &cobra.Command{
		Use:   "swaggerfilter [OPTIONS] PREFIX",
		Short: "Keep only the swagger definitions that start with PREFIX",
		Long: `Reads a swagger document from stdin, drops every definition whose name does
not start with PREFIX, clears allOf on the built-in leaf types and writes the
result to stdout indented with four spaces.

Example:
  gen-openapi | swaggerfilter io.numaproj.numaflow.v1alpha1. > swagger.json`,
		Version: info.Version,
		// Arguments are checked in runFilter, after stdin.
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFilter(opts, args)
		},
	}

	cmd.SetIn(c.in)
	cmd.SetOut(c.out)
	cmd.SetErr(c.errOut)
	cmd.SetVersionTemplate(info.String())

	addRootFlags(cmd.Flags(), opts)
	return cmd
}

func addRootFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log a summary of the filtering pass to stderr")
	flags.StringVar(&opts.envFile, "env-file", "", "Read SWAGGERFILTER_* settings from a dotenv file")
	flags.BoolVar(&opts.listLeafTypes, "list-leaf-types", false, "Print the leaf types whose allOf is cleared and exit")
}

func (c *cli) runFilter(opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	c.logger = cfg.NewLogger(c.errOut, opts.verbose)

	if opts.listLeafTypes {
		for _, name := range registry.LeafTypes().Names() {
			fmt.Fprintln(c.out, name)
		}
		return nil
	}

	if err := checkInput(c.in); err != nil {
		return err
	}

	prefix, err := prefixArg(args)
	if err != nil {
		return err
	}

	p, err := processor.New(prefix, processor.WithLogger(c.logger))
	if err != nil {
		return err
	}

	_, err = p.Run(c.in, c.out)
	return err
}

// checkInput refuses to read from an interactive terminal.
func checkInput(in io.Reader) error {
	if _, isTerminal := term.GetFdInfo(in); isTerminal {
		return errors.ErrNoInputProvided
	}
	return nil
}

func prefixArg(args []string) (string, error) {
	switch {
	case len(args) == 0 || args[0] == "":
		return "", errors.NewMissingArgumentError()
	case len(args) > 1:
		return "", errors.NewTooManyArgumentsError(len(args))
	}
	return args[0], nil
}
