package docs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/kv"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code blocks run by TestManual.
const (
	setupBlock  = "bash setup"    // starts a scenario in an empty folder
	runBlock    = "bash run"      // its output is compared by the next console check
	outputBlock = "console check" // expected output of the last run
	checkBlock  = "bash check"    // must exit with status 0
)

// block is a fenced code block of a manual page.
type block struct {
	kind    string
	content string
	line    int
}

// scenario is a setup block and the blocks that follow it, up to the next setup.
type scenario struct {
	file   string
	blocks []block
}

func (s scenario) String() string { return fmt.Sprintf("%s:%d", s.file, s.blocks[0].line) }

// TestReadme checks that readme.md lists exactly the available topics.
func TestReadme(t *testing.T) {
	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatal(err)
	}

	// topics are listed as "* <name>: <description>".
	var listed []string
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		item, ok := n.(*ast.ListItem)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if lines := item.FirstChild().Lines(); lines.Len() > 0 {
			first := lines.At(0)
			if name, _, found := strings.Cut(string(first.Value(content)), ":"); found {
				listed = append(listed, strings.TrimSpace(name))
			}
		}
		return ast.WalkSkipChildren, nil
	})
	slices.Sort(listed)

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(topics, listed); diff != "" {
		t.Errorf("readme.md topics mismatch (-available +listed):\n%s", diff)
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*): %v", err)
	}
	for _, topic := range topics {
		page, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q): %v", topic, err)
			continue
		}
		if !strings.HasPrefix(page, "# ") {
			t.Errorf("topic %q does not start with a title", topic)
		}
		if !strings.Contains(all, page) {
			t.Errorf("GetTopics(*) is missing topic %q", topic)
		}
	}
	if _, err := GetTopic("ledger"); err == nil {
		t.Error(`GetTopic("ledger") should fail`)
	}
}

// TestManual runs the scenarios of every manual page and of the README with
// the cb command, and checks that the ledger saved by cb agrees with what cb
// printed.
func TestManual(t *testing.T) {
	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "cb"), "../cb/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("cannot build cb: %v\n%s", err, out)
	}

	// scenarios must not depend on the developer's settings.
	var env []string
	for _, v := range os.Environ() {
		if !strings.HasPrefix(v, "CASHBOOK_") && !strings.HasPrefix(v, "PATH=") {
			env = append(env, v)
		}
	}
	env = append(env, fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")))

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")
	for _, file := range files {
		for _, s := range parseScenarios(t, file) {
			t.Run(s.String(), func(t *testing.T) {
				r := &runner{env: env, dir: t.TempDir()}
				for _, b := range s.blocks {
					r.run(t, s.file, b)
				}
			})
		}
	}
}

// parseScenarios returns the scenarios of a markdown file.
func parseScenarios(t *testing.T, file string) []scenario {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	var scenarios []scenario
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		b := block{
			kind: string(fcb.Info.Segment.Value(content)),
			line: bytes.Count(content[:fcb.Info.Segment.Start], []byte("\n")) + 1,
		}
		switch b.kind {
		case setupBlock:
			scenarios = append(scenarios, scenario{file: file})
		case runBlock, outputBlock, checkBlock:
			if len(scenarios) == 0 {
				t.Fatalf("%s:%d: %q block before any %q block", file, b.line, b.kind, setupBlock)
			}
		default:
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			sb.Write(line.Value(content))
		}
		b.content = sb.String()
		last := &scenarios[len(scenarios)-1]
		last.blocks = append(last.blocks, b)
		return ast.WalkContinue, nil
	})
	return scenarios
}

var (
	recordedRE = regexp.MustCompile(`(?m)^Recorded entry #(\d+): (.+) [+-]\S+$`)
	updatedRE  = regexp.MustCompile(`(?m)^Updated entry #(\d+)$`)
	deletedRE  = regexp.MustCompile(`(?m)^Deleted entry #(\d+)$`)
	importedRE = regexp.MustCompile(`(?m)^Imported (\d+) entries$`)
	demoRE     = regexp.MustCompile(`(?m)^Loaded (\d+) demonstration entries$`)
	listRE     = regexp.MustCompile(`^cb ls(?: -f (\w+))?$`)
)

// runner runs the blocks of one scenario in dir.
type runner struct {
	env    []string
	dir    string
	output string // output of the last run block
	lastID int    // highest id printed by cb add so far
}

func (r *runner) run(t *testing.T, file string, b block) {
	t.Helper()
	at := fmt.Sprintf("%s:%d", file, b.line)

	if b.kind == outputBlock {
		want := strings.TrimSpace(b.content)
		got := strings.TrimSpace(r.output)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: output mismatch (-want +got):\n%s", at, diff)
		}
		return
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.content)
	cmd.Dir = r.dir
	cmd.Env = r.env
	out, err := cmd.CombinedOutput()
	if err != nil {
		if b.kind == checkBlock {
			t.Errorf("%s: check failed: %v\n%s", at, err, out)
			return
		}
		t.Fatalf("%s: %s failed: %v\n%s", at, b.kind, err, out)
	}
	if b.kind == runBlock {
		r.output = string(out)
	}

	l := r.ledger(t, at)
	r.checkMessages(t, at, string(out), l)
	r.checkList(t, at, b.content, string(out), l)
}

// ledger loads the ledger cb saved in the scenario folder and checks its ids.
func (r *runner) ledger(t *testing.T, at string) *cashbook.Ledger {
	t.Helper()
	store := kv.NewDir(filepath.Join(r.dir, ".cashbook"))
	l, err := cashbook.Load(context.Background(), store, cashbook.DefaultKey)
	if err != nil {
		t.Fatalf("%s: saved ledger: %v", at, err)
	}
	seen := make(map[int]bool)
	for _, e := range l.All() {
		if seen[e.ID] || e.ID >= l.NextID() {
			t.Errorf("%s: saved ledger has id %d twice or not below %d", at, e.ID, l.NextID())
		}
		seen[e.ID] = true
	}
	return l
}

// checkMessages checks the saved ledger against the confirmations printed by cb.
func (r *runner) checkMessages(t *testing.T, at, out string, l *cashbook.Ledger) {
	t.Helper()
	deleted := make(map[int]bool)
	for _, m := range deletedRE.FindAllStringSubmatch(out, -1) {
		id, _ := strconv.Atoi(m[1])
		deleted[id] = true
		if _, ok := l.Entry(id); ok {
			t.Errorf("%s: entry #%d reported deleted is still saved", at, id)
		}
	}
	for _, m := range recordedRE.FindAllStringSubmatch(out, -1) {
		id, _ := strconv.Atoi(m[1])
		if id <= r.lastID {
			t.Errorf("%s: entry #%d recorded after #%d", at, id, r.lastID)
		}
		r.lastID = id
		if deleted[id] {
			continue
		}
		if e, ok := l.Entry(id); !ok || e.Description != m[2] {
			t.Errorf("%s: recorded entry #%d %q not saved, got %+v", at, id, m[2], e)
		}
	}
	for _, m := range updatedRE.FindAllStringSubmatch(out, -1) {
		id, _ := strconv.Atoi(m[1])
		if e, ok := l.Entry(id); !ok || e.UpdatedAt == nil {
			t.Errorf("%s: updated entry #%d not saved as updated", at, id)
		}
	}
	for _, re := range []*regexp.Regexp{importedRE, demoRE} {
		if m := re.FindStringSubmatch(out); m != nil {
			if n, _ := strconv.Atoi(m[1]); l.Len() != n {
				t.Errorf("%s: cb reported %d entries, %d saved", at, n, l.Len())
			}
			r.lastID = l.NextID() - 1
		}
	}
}

// checkList checks that a "cb ls" command displayed the saved entries the
// filter accepts, or the message of the empty state.
func (r *runner) checkList(t *testing.T, at, script, out string, l *cashbook.Ledger) {
	t.Helper()
	m := listRE.FindStringSubmatch(strings.TrimSpace(script))
	if m == nil {
		return
	}
	mode, err := cashbook.ParseFilterMode(m[1])
	if err != nil {
		t.Fatalf("%s: %v", at, err)
	}
	v := cashbook.NewView(l.All(), mode, cashbook.DefaultCurrency)
	if v.Empty != cashbook.EmptyNone {
		if title, _ := v.EmptyMessage(); !strings.Contains(out, title) {
			t.Errorf("%s: output does not tell %q:\n%s", at, title, out)
		}
		return
	}
	for _, row := range v.Rows {
		if !strings.Contains(out, row.Description) {
			t.Errorf("%s: entry #%d %q not listed:\n%s", at, row.ID, row.Description, out)
		}
	}
}
