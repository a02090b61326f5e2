package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/bank"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ledgerBlock is the info string of fenced blocks holding a ledger file.
const ledgerBlock = "ledger"

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := All()
	if err != nil {
		t.Fatalf("All() returned an unexpected error: %v", err)
	}
	slices.Sort(listed)
	if !slices.Equal(all, listed) {
		t.Errorf("topics in readme.md = %v, want %v", listed, all)
	}

	if _, err := Topic("no-such-topic"); err == nil {
		t.Errorf("Topic(no-such-topic) returned no error")
	}
	star, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*) returned an unexpected error: %v", err)
	}
	if !strings.Contains(star, "# Ledger file format") {
		t.Errorf("Topic(*) does not contain the file-format topic")
	}
}

func TestLedgerBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			for _, block := range parseMarkdown(t, file) {
				l, err := bank.DecodeLedger(strings.NewReader(block.Content))
				if err != nil {
					t.Errorf("%s:%d: invalid ledger block: %v", block.File, block.Line, err)
					continue
				}
				var buf bytes.Buffer
				if err := bank.EncodeLedger(&buf, l); err != nil {
					t.Errorf("%s:%d: cannot encode ledger block: %v", block.File, block.Line, err)
					continue
				}
				if got := buf.String(); got != block.Content {
					t.Errorf("%s:%d: ledger block is not canonical:\ngot:\n%s\nwant:\n%s", block.File, block.Line, got, block.Content)
				}
			}
		})
	}
}

// Block is a fenced ledger block of a markdown file.
type Block struct {
	Content string
	File    string
	Line    int
}

// parseMarkdown returns the ledger blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(content)) != ledgerBlock {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Content: b.String(),
			File:    file,
			Line:    bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}
