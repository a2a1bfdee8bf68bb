package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi/cmd"
	"github.com/its-camilo/smartfi/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It has to
// be kept in sync with the flags each subcommand declares.
func completion() *complete.Command {
	account := predict.Something
	group := predict.Something
	currency := predict.Set{"COP", "USD"}

	topics, _ := docs.AllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"book-file":   predict.Files("*.json"),
			"ledger-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"new-account": {Flags: map[string]complete.Predictor{
				"name":    predict.Something,
				"type":    predict.Set{"debit", "credit"},
				"cur":     currency,
				"balance": predict.Something,
				"limit":   predict.Something,
				"group":   group,
				"tag":     predict.Something,
			}},
			"edit-account": {Flags: map[string]complete.Predictor{
				"a":       account,
				"name":    predict.Something,
				"group":   group,
				"ungroup": predict.Nothing,
				"tag":     predict.Something,
				"limit":   predict.Something,
			}},
			"rm-account": {Flags: map[string]complete.Predictor{
				"a": account,
				"f": predict.Nothing,
			}},
			"new-group": {Flags: map[string]complete.Predictor{
				"name": predict.Something,
			}},
			"rename-group": {Flags: map[string]complete.Predictor{
				"g":    group,
				"name": predict.Something,
			}},
			"rm-group": {Flags: map[string]complete.Predictor{
				"g": group,
			}},
			"move": {Flags: map[string]complete.Predictor{
				"a":      account,
				"b":      account,
				"groups": predict.Nothing,
			}},
			"adjust": {Flags: map[string]complete.Predictor{
				"a":      account,
				"amount": predict.Something,
				"d":      predict.Something,
			}},
			"list": {},
			"summary": {Flags: map[string]complete.Predictor{
				"cur": currency,
			}},
			"history": {Flags: map[string]complete.Predictor{
				"from": predict.Something,
				"cur":  currency,
				"json": predict.Nothing,
			}},
			"returns": {Flags: map[string]complete.Predictor{
				"w":   predict.Set{"1m", "3m", "6m", "12m", "all"},
				"g":   group,
				"tag": predict.Something,
				"cur": currency,
			}},
			"rate": {Flags: map[string]complete.Predictor{
				"set":   predict.Something,
				"fetch": predict.Nothing,
			}},
			"fmt":    {},
			"topic":  {Args: predict.Set(topics)},
			"assist": {},
		},
	}
}

func main() {
	completion().Complete("sfi")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
