/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/dburkart/imprint/pkg/common/parse"
	"github.com/dburkart/imprint/pkg/template"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Command = &cobra.Command{
		Use:   "render [template]",
		Short: "Render a template file against configured bindings",
		Args:  cobra.ExactArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			raw, err := os.ReadFile(args[0])
			if err != nil {
				log.Fatal().Err(errors.Wrap(err, "reading template")).Send()
			}
			input := string(raw)

			tokens, err := template.Tokenize(input)
			if err != nil {
				if perr, ok := err.(*parse.Error); ok {
					fmt.Fprint(os.Stderr, perr.Detail(input))
					os.Exit(1)
				}
				log.Fatal().Err(err).Msg("error scanning template")
			}

			bindings := template.Bindings(viper.GetStringMap("vars"))
			if bindings == nil {
				bindings = template.Bindings{}
			}

			pairs, _ := cmd.Flags().GetStringArray("set")
			for _, pair := range pairs {
				key, value, found := strings.Cut(pair, "=")
				if !found {
					log.Fatal().Str("pair", pair).Msg("--set takes key=value pairs")
				}

				v, err := template.ParseVariable(key)
				if err != nil {
					log.Fatal().Err(err).Str("key", key).Msg("invalid variable name")
				}
				bindings.Set(v, value)
			}

			out, err := template.Render(tokens, bindings)
			if err != nil {
				log.Fatal().Err(err).Msg("error rendering template")
			}

			outFile, _ := cmd.Flags().GetString("output")
			if outFile == "" {
				fmt.Print(out)
			} else if err := os.WriteFile(outFile, []byte(out), 0644); err != nil {
				log.Fatal().Err(errors.Wrap(err, "writing output")).Send()
			}

			log.Debug().
				Str("template", args[0]).
				Str("in", humanize.Bytes(uint64(len(input)))).
				Str("out", humanize.Bytes(uint64(len(out)))).
				Int("tokens", len(tokens)).
				Msg("rendered template")
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "", "File to write rendered output to (default stdout)")
	Command.Flags().StringArrayP("set", "s", nil, "Bind a variable for this render (key=value, dotted keys nest)")
}
