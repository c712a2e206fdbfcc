package parser

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/nickhildpac/slackbot-parser/pkg/samples"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "create",
			line: `/slackbot create myTaskA:'plain vanilla task':1:10`,
			want: Command{
				Verb:              VerbCreate,
				TaskName:          "myTaskA",
				TaskDescription:   strPtr("plain vanilla task"),
				PriorityLevel:     intPtr(1),
				PercentCompletion: intPtr(10),
			},
		},
		{
			name: "create with bounds",
			line: `/slackbot create t:"d":0:0`,
			want: Command{
				Verb:              VerbCreate,
				TaskName:          "t",
				TaskDescription:   strPtr("d"),
				PriorityLevel:     intPtr(0),
				PercentCompletion: intPtr(0),
			},
		},
		{
			name: "update without description or priority",
			line: `/slackbot update myTaskA:"":'':40`,
			want: Command{
				Verb:              VerbUpdate,
				TaskName:          "myTaskA",
				TaskDescription:   strPtr(""),
				PercentCompletion: intPtr(40),
			},
		},
		{
			name: "update with description only",
			line: `/slackbot update myTaskA:"new description"::40`,
			want: Command{
				Verb:              VerbUpdate,
				TaskName:          "myTaskA",
				TaskDescription:   strPtr("new description"),
				PercentCompletion: intPtr(40),
			},
		},
		{
			name: "update with priority",
			line: `/slackbot update myTaskA::2:100`,
			want: Command{
				Verb:              VerbUpdate,
				TaskName:          "myTaskA",
				TaskDescription:   strPtr(""),
				PriorityLevel:     intPtr(2),
				PercentCompletion: intPtr(100),
			},
		},
		{
			name: "suspend",
			line: `/slackbot suspend myTaskB`,
			want: Command{Verb: VerbSuspend, TaskName: "myTaskB"},
		},
		{
			name: "abandon",
			line: `/slackbot abandon myTaskC`,
			want: Command{Verb: VerbAbandon, TaskName: "myTaskC"},
		},
		{
			name: "quoted task name",
			line: `/slackbot suspend 'my task'`,
			want: Command{Verb: VerbSuspend, TaskName: "my task"},
		},
		{
			name: "extra words are ignored",
			line: `/slackbot abandon myTaskC please now`,
			want: Command{Verb: VerbAbandon, TaskName: "myTaskC"},
		},
		{
			name: "lenient integers",
			line: `/slackbot create t:d:' +1':'050 '`,
			want: Command{
				Verb:              VerbCreate,
				TaskName:          "t",
				TaskDescription:   strPtr("d"),
				PriorityLevel:     intPtr(1),
				PercentCompletion: intPtr(50),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			if !ok {
				_, err := Diagnose(tt.line)
				t.Fatalf("Parse(%q) rejected: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q):\n got %+v\nwant %+v", tt.line, describe(got), describe(tt.want))
			}
		})
	}
}

func TestDiagnoseReasons(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{`/slackbot create myTaskA:'plain vanilla task":1:10`, ErrSyntax},
		{``, ErrTooFewTokens},
		{`/slackbot suspend`, ErrTooFewTokens},
		{`/slackbot createmyTaskA:'plain vanilla task':1:10`, ErrTooFewTokens},
		{`/slackbott create myTaskA:'plain vanilla task':1:10`, ErrPrefix},
		{`slackbot create myTaskA:'plain vanilla task':1:10`, ErrPrefix},
		{`/Slackbot suspend myTaskA`, ErrPrefix},
		{`/slackbot Create myTaskA:d:1:10`, ErrUnknownCommand},
		{`/slackbot delete myTaskA`, ErrUnknownCommand},
		{`/slackbot creates myTaskA:d:1:10`, ErrUnknownCommand},
		{`/slackbot create myTaskA:'plain vanilla task':1:10:45`, ErrFieldCount},
		{`/slackbot create :plain vanilla task:1:uhuh`, ErrFieldCount},
		{`/slackbot update myTaskA::40`, ErrFieldCount},
		{`/slackbot suspend myTaskB:::`, ErrFieldCount},
		{`/slackbot abandon myTaskC:`, ErrFieldCount},
		{`/slackbot create :'plain vanilla task':1:10`, ErrEmptyField},
		{`/slackbot create myTaskA::1:10`, ErrEmptyField},
		{`/slackbot update :::75`, ErrEmptyField},
		{`/slackbot abandon ''`, ErrEmptyField},
		{`/slackbot create myTaskA:'plain vanilla task':hello:10`, ErrNotNumeric},
		{`/slackbot create myTaskA:'plain vanilla task':1:uhuh`, ErrNotNumeric},
		{`/slackbot create myTaskA:d::10`, ErrNotNumeric},
		{`/slackbot update myTaskA:::`, ErrNotNumeric},
		{`/slackbot update myTaskA::x:40`, ErrNotNumeric},
		{`/slackbot create myTaskA:d:1.0:10`, ErrNotNumeric},
		{`/slackbot create myTaskA:"plain vanilla task":3:10`, ErrOutOfRange},
		{`/slackbot create myTaskA:d:-1:10`, ErrOutOfRange},
		{`/slackbot create myTaskA:'plain vanilla task':1:200`, ErrOutOfRange},
		{`/slackbot update myTaskA::4:40`, ErrOutOfRange},
		{`/slackbot update myTaskA:::400`, ErrOutOfRange},
		{`/slackbot update myTaskA:::-1`, ErrOutOfRange},
		{`/slackbot update myTaskA:::99999999999999999999999`, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Diagnose(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Diagnose(%q): got error %v, want %v", tt.line, err, tt.want)
			}
			if !reflect.DeepEqual(got, Command{}) {
				t.Errorf("Diagnose(%q): got partial command %+v", tt.line, describe(got))
			}
			if cmd, ok := Parse(tt.line); ok || !reflect.DeepEqual(cmd, Command{}) {
				t.Errorf("Parse(%q): got %+v, %v; want empty, false", tt.line, describe(cmd), ok)
			}
		})
	}
}

func TestParseSamples(t *testing.T) {
	for _, line := range samples.All() {
		cmd, ok := Parse(line.Text)
		if ok != line.Valid {
			t.Errorf("Parse(%q): got ok=%v, want %v", line.Text, ok, line.Valid)
			continue
		}
		if ok {
			checkDomain(t, line.Text, cmd)
		}
	}
}

func TestWithPrefix(t *testing.T) {
	line := `!task suspend myTaskB`

	if _, ok := Parse(line); ok {
		t.Errorf("Parse(%q) with default prefix: got ok", line)
	}
	cmd, ok := Parse(line, WithPrefix("!task"))
	if !ok {
		t.Fatalf("Parse(%q) with prefix !task: rejected", line)
	}
	if cmd.Verb != VerbSuspend || cmd.TaskName != "myTaskB" {
		t.Errorf("Parse(%q): got %+v", line, describe(cmd))
	}
	if _, ok := Parse(`/slackbot suspend myTaskB`, WithPrefix("!task")); ok {
		t.Errorf("default prefix accepted after WithPrefix")
	}
}

func TestParseIsIdempotent(t *testing.T) {
	for _, line := range samples.All() {
		first, ok1 := Parse(line.Text)
		second, ok2 := Parse(line.Text)
		if ok1 != ok2 || !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) not repeatable: %+v/%v then %+v/%v",
				line.Text, describe(first), ok1, describe(second), ok2)
		}
	}
}

func TestParseResultsDoNotAlias(t *testing.T) {
	a, _ := Parse(`/slackbot create t:d:1:10`)
	b, _ := Parse(`/slackbot create t:d:1:10`)
	*a.PriorityLevel = 2
	*a.TaskDescription = "changed"
	if *b.PriorityLevel != 1 || *b.TaskDescription != "d" {
		t.Errorf("results share storage: %+v", describe(b))
	}
}

// checkDomain asserts the per-verb constraints every accepted command meets.
func checkDomain(t *testing.T, line string, cmd Command) {
	t.Helper()

	if cmd.TaskName == "" {
		t.Errorf("%q: empty task name", line)
	}
	switch cmd.Verb {
	case VerbCreate:
		if cmd.TaskDescription == nil || *cmd.TaskDescription == "" {
			t.Errorf("%q: create without description", line)
		}
		if cmd.PriorityLevel == nil {
			t.Errorf("%q: create without priority", line)
		}
		if cmd.PercentCompletion == nil {
			t.Errorf("%q: create without percent", line)
		}
	case VerbUpdate:
		if cmd.TaskDescription == nil {
			t.Errorf("%q: update with nil description", line)
		}
		if cmd.PercentCompletion == nil {
			t.Errorf("%q: update without percent", line)
		}
	case VerbSuspend, VerbAbandon:
		if cmd.TaskDescription != nil || cmd.PriorityLevel != nil || cmd.PercentCompletion != nil {
			t.Errorf("%q: %s carries task fields: %+v", line, cmd.Verb, describe(cmd))
		}
	default:
		t.Errorf("%q: unexpected verb %q", line, cmd.Verb)
	}
	if p := cmd.PriorityLevel; p != nil && (*p < MinPriority || *p > MaxPriority) {
		t.Errorf("%q: priority %d out of range", line, *p)
	}
	if p := cmd.PercentCompletion; p != nil && (*p < MinPercent || *p > MaxPercent) {
		t.Errorf("%q: percent %d out of range", line, *p)
	}
}

// describe dereferences pointer fields for readable failure output.
func describe(c Command) map[string]any {
	m := map[string]any{"verb": c.Verb, "name": c.TaskName}
	if c.TaskDescription != nil {
		m["desc"] = *c.TaskDescription
	}
	if c.PriorityLevel != nil {
		m["priority"] = *c.PriorityLevel
	}
	if c.PercentCompletion != nil {
		m["percent"] = *c.PercentCompletion
	}
	return m
}

func TestParseConcurrent(t *testing.T) {
	lines := samples.All()
	want := make([]Command, len(lines))
	for i, l := range lines {
		want[i], _ = Parse(l.Text)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64*len(lines))
	for g := 0; g < 64; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range lines {
				l := lines[(i+g)%len(lines)]
				got, ok := Parse(l.Text)
				if ok != l.Valid || !reflect.DeepEqual(got, want[(i+g)%len(lines)]) {
					errs <- l.Text
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for line := range errs {
		t.Errorf("Parse(%q) differed under concurrent use", line)
	}
}
