// Copyright 2026 The Zigzag-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Width   string

	log *zap.Logger
}

// NewRootCommand creates the zigzagtool command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "zigzagtool",
		Short:         "Zigzag encode or decode integers",
		Long:          "Maps signed integers to unsigned ones (encode) and back (decode) using the protocol buffers zigzag mapping.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				opts.log = newLogger(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr")
	cmd.PersistentFlags().StringVarP(&opts.Width, "width", "w", "64", fmt.Sprintf("integer width (%s)", strings.Join(ValidWidths, "|")))

	cmd.AddCommand(newConvertCommand(opts, "encode", "Encode signed integers", false))
	cmd.AddCommand(newConvertCommand(opts, "decode", "Decode unsigned integers", true))

	return cmd
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

func newConvertCommand(opts *RootOptions, use, short string, decode bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [values...]",
		Short: short,
		Long:  short + ". With no arguments, values are read from stdin, one per line. Put -- before negative values given as arguments.",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			c, err := lookupCodec(opts.Width)
			if err != nil {
				return err
			}
			conv := c.encode
			if decode {
				conv = c.decode
			}
			log := opts.log.With(zap.String("op", use), zap.String("width", opts.Width))
			defer log.Sync() //nolint:errcheck

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer func() {
				if ferr := out.Flush(); err == nil && ferr != nil {
					err = fmt.Errorf("write output: %w", ferr)
				}
			}()

			emit := func(s string) error {
				r, err := conv(s)
				if err != nil {
					return err
				}
				log.Debug("converted", zap.String("in", s), zap.String("out", r))
				_, err = fmt.Fprintln(out, r)
				return err
			}

			if len(args) > 0 {
				for _, a := range args {
					if err := emit(a); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; sc.Scan(); line++ {
				s := strings.TrimSpace(sc.Text())
				if s == "" {
					continue
				}
				if err := emit(s); err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
			}
			return sc.Err()
		},
	}
}
