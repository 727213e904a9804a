/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dburkart/imprint/pkg/common/parse"
	replpkg "github.com/dburkart/imprint/pkg/repl"
	"github.com/dburkart/imprint/pkg/template"
	"github.com/rs/zerolog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log zerolog.Logger

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt for tokenizing template snippets",

		Run: func(cmd *cobra.Command, args []string) {
			bindings := template.Bindings(viper.GetStringMap("vars"))
			if bindings == nil {
				bindings = template.Bindings{}
			}

			readlinePrompt(bindings)
		},
	}
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(bindings template.Bindings) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("expand"),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := replpkg.NewOutputWriter(os.Stdout, "text")

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if strings.ToUpper(line) == "HELP" {
			fmt.Println("usage:")
			fmt.Println("    <template line>   tokenize a template snippet")
			fmt.Println("    expand <line>     tokenize and render against configured vars")
			fmt.Println("    exit")
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		if rest, found := strings.CutPrefix(line, "expand "); found {
			out, err := template.Expand(rest, bindings)
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			fmt.Println(out)
			continue
		}

		tokens, err := template.Tokenize(line)
		if err != nil {
			if perr, ok := err.(*parse.Error); ok {
				fmt.Print(perr.Detail(line))
			} else {
				log.Error().Err(err).Send()
			}
			continue
		}

		writer.Write(tokens)
		fmt.Println()
	}
	rl.Clean()
}
