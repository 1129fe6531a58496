package cmd

import (
	"os"
	"strings"

	"github.com/etnz/tally"
	"github.com/etnz/tally/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the tly command line for shell completion.
func Completion() *complete.Command {
	participants := complete.PredictFunc(predictParticipants)
	reports := map[string]complete.Predictor{"md": predict.Nothing}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"journal":   predict.Files("*.jsonl"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init": {
				Flags: map[string]complete.Predictor{"name": predict.Something},
				Args:  predict.Something,
			},
			"add": {
				Flags: map[string]complete.Predictor{
					"spender": participants,
					"amount":  predict.Something,
					"exclude": participants,
					"memo":    predict.Something,
				},
			},
			"balances": {
				Flags: map[string]complete.Predictor{
					"md":     predict.Nothing,
					"settle": predict.Nothing,
				},
			},
			"demo":     {Flags: reports},
			"expenses": {},
			"settle":   {},
			"fmt":      {},
			"topic":    {Args: complete.PredictFunc(predictTopics)},
			"help":     {},
			"flags":    {},
		},
	}
}

// predictParticipants lists the participants of the group in the journal
// designated by the environment. Completion runs before flags are parsed.
func predictParticipants(prefix string) []string {
	name := os.Getenv(EnvJournalFile)
	if name == "" {
		name = defaultJournalFile
	}
	f, err := os.Open(name)
	if err != nil {
		return nil
	}
	defer f.Close()
	l, err := tally.DecodeJournal(f)
	if err != nil {
		return nil
	}

	// the -exclude flag takes a comma separated list: complete the last item.
	done := ""
	if i := strings.LastIndex(prefix, ","); i >= 0 {
		done = prefix[:i+1]
	}
	var names []string
	for p := range l.Participants() {
		names = append(names, done+p.Name())
	}
	return names
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme", "*")
}
