package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/tally"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error: %v", err)
	}
	for _, title := range []string{"# Journal", "# Balances", "# Settle"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopics(*) does not contain %q", title)
		}
	}
	if _, err := GetTopics("journal", "unknown"); err == nil {
		t.Errorf("GetTopics() with an unknown topic: expected an error")
	}
}

// outputs maps the topics to the command output their console blocks show.
var outputs = map[string]func(*tally.Ledger) []string{
	"balances": (*tally.Ledger).Balances,
	"settle": func(l *tally.Ledger) []string {
		var lines []string
		for _, s := range l.Settle() {
			lines = append(lines, s.String())
		}
		return lines
	},
}

func TestCodeBlocks(t *testing.T) {
	// Every json block is a valid journal, and the console block that follows
	// it is the output computed from this journal.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			var ledger *tally.Ledger
			for _, b := range parseMarkdown(t, file) {
				switch b.Type {
				case "json":
					ledger, err = tally.DecodeJournal(strings.NewReader(b.Content))
					if err != nil {
						t.Fatalf("%s:%d: invalid journal: %v", file, b.Line, err)
					}
				case "console":
					output, ok := outputs[strings.TrimSuffix(file, ".md")]
					if !ok || ledger == nil {
						t.Fatalf("%s:%d: console block without a journal to check it", file, b.Line)
					}
					want := strings.Split(strings.TrimSuffix(b.Content, "\n"), "\n")
					if diff := cmp.Diff(want, output(ledger)); diff != "" {
						t.Errorf("%s:%d: output mismatch (-doc +computed):\n%s", file, b.Line, diff)
					}
				}
			}
		})
	}
}

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	Line    int
}

// parseMarkdown returns the fenced code blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, Block{
			Type:    string(fcb.Language(content)),
			Content: b.String(),
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an offset in source.
func lineNumber(source []byte, offset int) int {
	return strings.Count(string(source[:offset]), "\n") + 1
}
