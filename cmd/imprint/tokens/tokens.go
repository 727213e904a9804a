/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokens

import (
	"fmt"
	"os"

	"github.com/dburkart/imprint/pkg/common/parse"
	"github.com/dburkart/imprint/pkg/repl"
	"github.com/dburkart/imprint/pkg/template"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Command = &cobra.Command{
		Use:   "tokens [template]",
		Short: "Dump the token stream of a template file",
		Args:  cobra.ExactArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			format := viper.GetString("imprint.format")
			switch format {
			case "csv", "json", "text":
			default:
				log.Fatal().Str("format", format).Msg("unsupported output format")
			}

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

			writer := repl.NewOutputWriter(os.Stdout, format)
			writer.Write(tokens)
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("format", "f", "text", "Output format of the token dump [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("imprint.format", Command.Flags().Lookup("format"))
}
