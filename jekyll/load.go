package jekyll

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/mdutils"
	"github.com/remeh/sizedwaitgroup"
	"gopkg.in/yaml.v2"
)

type frontMatter struct {
	Layout string `yaml:"layout,omitempty"`
	Title  string `yaml:"title"`
	Order  *int   `yaml:"order,omitempty"`
}

func resolveGuide(rootDir string) (*Guide, error) {
	g := &Guide{}
	if manifest, err := getIndexYAML(rootDir); err == nil {
		if err = yaml.Unmarshal(manifest, g); err != nil {
			return nil, err
		}
	}
	if g.Slug == "" {
		g.Slug = filepath.Base(rootDir)
	}
	if g.Title == "" {
		g.Title = g.Slug
	}
	entries, err := ioutil.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range entries {
		if fi.IsDir() || isIgnoredName(fi.Name()) {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	docs := make([]*Document, len(names))
	swg := sizedwaitgroup.New(config.Cfg().ParseWorkers)
	for i, name := range names {
		swg.Add()
		go func(i int, name string) {
			defer swg.Done()
			doc, err := parseDocumentFile(rootDir, name)
			if err != nil {
				// A vanished or unreadable file is reported and skipped, never retried.
				Log.Warnf("Skipping unreadable document %s: %s", name, err.Error())
				return
			}
			docs[i] = doc
		}(i, name)
	}
	swg.Wait()
	for _, d := range docs {
		if d != nil {
			g.Documents = append(g.Documents, d)
		}
	}
	sortDocuments(g.Documents)
	for i, d := range g.Documents {
		d.Order = i
	}
	return g, nil
}

// sortDocuments orders explicitly-ordered documents first (by their
// front-matter order, ties by slug), then the rest by slug. The result is
// deterministic for any input ordering.
func sortDocuments(docs []*Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if a.HasExplicitOrder != b.HasExplicitOrder {
			return a.HasExplicitOrder
		}
		if a.HasExplicitOrder && a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Slug < b.Slug
	})
}

func parseDocumentFile(rootDir, name string) (*Document, error) {
	path := filepath.Join(rootDir, name)
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := NewDocumentFromMarkdown(strings.TrimSuffix(name, ".md"), raw)
	doc.FSPath = path
	return doc, nil
}

// NewDocumentFromMarkdown builds a Document from raw file contents: front
// matter (when present) supplies layout/title/order, the body supplies
// sections, questions and navigation links. A document without front matter
// gets the filename stem as its title and a warning, never an error.
func NewDocumentFromMarkdown(slug string, raw []byte) *Document {
	doc := &Document{
		Slug:          slug,
		DeclaredCount: -1,
	}
	fmBytes, body, hadFM := mdutils.SplitFrontMatter(raw)
	doc.BodyMD = string(body)
	if hadFM {
		fm := frontMatter{}
		if err := yaml.Unmarshal(fmBytes, &fm); err != nil {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("invalid front matter: %s", err.Error()))
		} else {
			doc.Layout = fm.Layout
			doc.Title = fm.Title
			if fm.Order != nil {
				doc.Order = *fm.Order
				doc.HasExplicitOrder = true
			}
		}
	} else {
		doc.Warnings = append(doc.Warnings, "missing front matter")
	}
	if doc.Title == "" {
		doc.Title = slug
		if hadFM {
			doc.Warnings = append(doc.Warnings, "missing title in front matter")
		}
	}
	scan := ScanBody(doc.BodyMD, config.Cfg().QuestionHeadingLevel)
	doc.Sections = scan.Sections
	doc.Questions = scan.Questions
	doc.PrevSlug = scan.PrevSlug
	doc.NextSlug = scan.NextSlug
	doc.DeclaredCount = mdutils.ScanDeclaredCount(doc.Title)
	if doc.DeclaredCount < 0 {
		doc.DeclaredCount = scan.DeclaredCount
	}
	return doc
}

type BodyScan struct {
	Sections      []*Section
	Questions     []*Question
	DeclaredCount int
	PrevSlug      string
	NextSlug      string
}

// ScanBody makes a single line-oriented pass over a Markdown body and
// extracts sections, question entries and navigation links. Headings inside
// fenced code blocks are opaque text. When the body contains a level-2
// "questions" section, only headings after it become questions; otherwise
// every heading at questionLevel counts.
func ScanBody(body string, questionLevel int) *BodyScan {
	scan := &BodyScan{DeclaredCount: -1}
	scan.PrevSlug, scan.NextSlug = mdutils.ScanNavLinks(body)

	lines := strings.Split(body, "\n")
	gated := hasQuestionsGate(lines)

	seenAnchors := map[string]int{}
	anchorFor := func(text string) string {
		base := mdutils.HeadingAnchor(text)
		n := seenAnchors[base]
		seenAnchors[base]++
		if n > 0 {
			return fmt.Sprintf("%s-%d", base, n)
		}
		return base
	}

	inFence := false
	pastGate := false
	var curQuestion *Question
	var answer strings.Builder
	closeQuestion := func() {
		if curQuestion == nil {
			return
		}
		curQuestion.AnswerMD = strings.TrimSpace(answer.String())
		scan.Questions = append(scan.Questions, curQuestion)
		curQuestion = nil
		answer.Reset()
	}

	for _, line := range lines {
		if mdutils.IsFenceLine(line) {
			inFence = !inFence
			if curQuestion != nil {
				answer.WriteString(line)
				answer.WriteString("\n")
			}
			continue
		}
		if inFence {
			if curQuestion != nil {
				answer.WriteString(line)
				answer.WriteString("\n")
			}
			continue
		}
		level, text, ok := headingLine(line)
		if !ok {
			if curQuestion != nil {
				answer.WriteString(line)
				answer.WriteString("\n")
			}
			continue
		}
		if scan.DeclaredCount < 0 {
			scan.DeclaredCount = mdutils.ScanDeclaredCount(text)
		}
		if level > questionLevel {
			// Sub-headings below the question level stay inside the answer.
			if curQuestion != nil {
				answer.WriteString(line)
				answer.WriteString("\n")
			}
			continue
		}
		isGate := isQuestionsGate(level, text)
		if isGate {
			pastGate = true
		}
		if level <= questionLevel {
			closeQuestion()
		}
		anchor := anchorFor(text)
		if level == questionLevel && !isGate && (!gated || pastGate) {
			curQuestion = &Question{Text: strings.TrimSpace(text), Anchor: anchor}
			continue
		}
		if level == 2 || level == 3 {
			scan.Sections = append(scan.Sections, &Section{
				Name:   strings.TrimSpace(text),
				Anchor: anchor,
				Level:  level,
			})
		}
	}
	closeQuestion()
	return scan
}

func hasQuestionsGate(lines []string) bool {
	inFence := false
	for _, line := range lines {
		if mdutils.IsFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if level, text, ok := headingLine(line); ok && isQuestionsGate(level, text) {
			return true
		}
	}
	return false
}

func isQuestionsGate(level int, text string) bool {
	return level == 2 && strings.Contains(strings.ToLower(text), "question")
}

func headingLine(line string) (level int, text string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 || level == len(trimmed) || trimmed[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}
