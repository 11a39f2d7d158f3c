package cli

import (
	"flag"
	"io"

	"github.com/SscSPs/ledger_display/internal/core/domain"
	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagValues lists the completions offered for flags with a closed set of values.
var flagValues = map[string]complete.Predictor{
	"type":     predict.Set{string(domain.User), string(domain.Category), string(domain.System)},
	"subtype":  predict.Set{string(domain.Asset), string(domain.Liability)},
	"preset":   predict.Set{string(utils.PresetSummary), string(utils.PresetCode)},
	"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "INR"},
	"output":   predict.Set{string(OutputTerm), string(OutputMarkdown), string(OutputHTML)},
}

// Completion describes ledgerctl for shell completion.
// The flags come from the subcommands themselves so the two cannot drift apart.
func (app *App) Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(global),
	}
	for _, cmd := range app.Commands() {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cmd.SetFlags(fs)

		sub := &complete.Command{Flags: predictors(fs)}
		if cmd.Name() == "import" {
			sub.Args = predict.Files("*")
		}
		root.Sub[cmd.Name()] = sub
	}
	return root
}

func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagValues[f.Name]; ok {
			res[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			res[f.Name] = predict.Nothing
			return
		}
		res[f.Name] = predict.Something
	})
	return res
}
