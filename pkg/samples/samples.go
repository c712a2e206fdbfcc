// Package samples holds example slackbot lines used by the demo command and
// by tests.
package samples

// Good lines are valid commands for the default prefix.
var Good = []string{
	`/slackbot create myTaskA:'plain vanilla task':1:10`,
	`/slackbot update myTaskA:::40`,
	`/slackbot update myTaskA:"new description"::40`,
	`/slackbot update myTaskA::0:40`,
	`/slackbot update myTaskA:::75`,
	`/slackbot update myTaskA:::100`,
	`/slackbot create myTaskB:'super duper task':2:5`,
	`/slackbot update myTaskB:::20`,
	`/slackbot suspend myTaskB`,
	`/slackbot update myTaskB:'not so super duper task after all':0:20`,
	`/slackbot update myTaskB:::50`,
	`/slackbot update myTaskB:::100`,
	`/slackbot create myTaskC:"out of left field task":1:20`,
	`/slackbot update myTaskC:::40`,
	`/slackbot update myTaskC:::30`,
	`/slackbot update myTaskC::0:30`,
	`/slackbot update myTaskC:::50`,
	`/slackbot update myTaskC:::40`,
	`/slackbot abandon myTaskC`,
}

// Bad lines are rejected for the default prefix.
var Bad = []string{
	`/slackbott create myTaskA:'plain vanilla task':1:10`,
	`slackbot create myTaskA:'plain vanilla task':1:10`,
	`/slackbot createmyTaskA:'plain vanilla task':1:10`,
	`/slackbotcreate myTaskA:"plain vanilla task":1:10`,
	`/slackbot create myTaskA:"plain vanilla task":3:10`,
	`/slackbot create myTaskA:'plain vanilla task':1:200`,
	`/slackbot create myTaskA:'plain vanilla task':1:10:45`,
	`/slackbot create myTaskA:'plain vanilla task':hello:10`,
	`/slackbot create myTaskA:'plain vanilla task':1:uhuh`,
	`/slackbot create :'plain vanilla task':1:uhuh`,
	`/slackbot create :plain vanilla task:1:uhuh`,
	`/slackbot update myTaskA::40`,
	`/slackbot update myTaskA:40`,
	`/slackbot update myTaskA::4:40`,
	`/slackbot update myTaskA:::400`,
	`/slackbot update :::75`,
	`/slackbot suspend myTaskB:::`,
	`/slackbot suspend myTaskB::`,
	`/slackbot suspend myTaskB:`,
	`/slackbot suspend myTaskB:::350`,
	`/slackbot abandon myTaskC:::`,
	`/slackbot abandon myTaskC::`,
	`/slackbot abandon myTaskC:`,
	`/slackbot abandon myTaskC::3:`,
	`/slackbot abandon myTaskC:::102`,
	`/slackbot create myTaskA:'plain vanilla task":1:10`,
	`/slackbot create myTaskA:"plain vanilla task':1:10`,
}

// Line is a sample together with its expected outcome.
type Line struct {
	Text  string
	Valid bool
}

// All returns every sample, good lines first.
func All() []Line {
	lines := make([]Line, 0, len(Good)+len(Bad))
	for _, text := range Good {
		lines = append(lines, Line{Text: text, Valid: true})
	}
	for _, text := range Bad {
		lines = append(lines, Line{Text: text, Valid: false})
	}
	return lines
}
