package cmd

import (
	"strconv"

	"github.com/etnz/coinmon"
	"github.com/etnz/coinmon/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	var codes predict.Set
	for _, c := range coinmon.Currencies() {
		codes = append(codes, c.Code)
	}
	var columns predict.Set
	for i := 0; i < 9; i++ {
		columns = append(columns, strconv.Itoa(i))
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"convert":   codes,
			"find":      predict.Something,
			"top":       predict.Something,
			"portfolio": predict.Files("*.json"),
			"specific":  predict.Something,
			"rank":      columns,
			"api":       predict.Something,
			"env":       predict.Files("*.env"),
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"list": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{formatTable, formatMarkdown},
				},
			},
			"currencies": {},
			"topic":      {Args: predict.Set(topics)},
			"help":       {},
			"flags":      {},
			"commands":   {},
		},
	}
}

// Complete answers shell completion requests and exits. It does nothing when
// the program is not run for completion.
//
// Install it in bash with:
//
//	complete -C coinmon coinmon
func Complete(name string) {
	completion().Complete(name)
}
