package jekyll

import (
	"time"

	"github.com/androidprep/guideutil/ir"
)

type Guide struct {
	Title     string      `yaml:"title"`
	Slug      string      `yaml:"slug"`
	Language  string      `yaml:"language"`
	RepoURL   string      `yaml:"repo_url"`
	Documents []*Document `yaml:"-"`
}

func (g *Guide) GetTitle() string {
	return g.Title
}

func (g *Guide) GetSlug() string {
	return g.Slug
}

func (g *Guide) GetLanguage() string {
	return g.Language
}

func (g *Guide) GetRepoURL() string {
	return g.RepoURL
}

func (g *Guide) GetExtraAttributes() map[string]string {
	return map[string]string{}
}

func (g *Guide) GetDocuments() []ir.Document {
	return documentsToIRDocuments(g.Documents)
}

func documentsToIRDocuments(docs []*Document) []ir.Document {
	irDocs := make([]ir.Document, 0, len(docs))
	for _, d := range docs {
		irDocs = append(irDocs, d)
	}
	return irDocs
}

type Document struct {
	Slug             string
	FSPath           string
	Layout           string
	Title            string
	Order            int
	HasExplicitOrder bool
	DeclaredCount    int
	PrevSlug         string
	NextSlug         string
	BodyMD           string
	Warnings         []string
	Sections         []*Section
	Questions        []*Question
	UpdatedAt        time.Time
}

func (d *Document) GetSlug() string {
	return d.Slug
}

func (d *Document) GetTitle() string {
	return d.Title
}

func (d *Document) GetLayout() string {
	return d.Layout
}

func (d *Document) GetOrder() int {
	return d.Order
}

func (d *Document) GetPrevSlug() string {
	return d.PrevSlug
}

func (d *Document) GetNextSlug() string {
	return d.NextSlug
}

func (d *Document) GetDeclaredQuestionCount() int {
	return d.DeclaredCount
}

func (d *Document) GetBodyMD() string {
	return d.BodyMD
}

func (d *Document) GetFSPath() string {
	return d.FSPath
}

func (d *Document) GetWarnings() []string {
	return d.Warnings
}

func (d *Document) GetSections() []ir.Section {
	sects := make([]ir.Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		sects = append(sects, s)
	}
	return sects
}

func (d *Document) GetQuestions() []ir.QuestionEntry {
	qs := make([]ir.QuestionEntry, 0, len(d.Questions))
	for _, q := range d.Questions {
		qs = append(qs, q)
	}
	return qs
}

func (d *Document) SetUpdatedAt(updatedAt time.Time) {
	d.UpdatedAt = updatedAt
}

func (d *Document) GetUpdatedAt() time.Time {
	return d.UpdatedAt
}

type Section struct {
	Name   string
	Anchor string
	Level  int
}

func (s *Section) GetName() string {
	return s.Name
}

func (s *Section) GetAnchor() string {
	return s.Anchor
}

func (s *Section) GetLevel() int {
	return s.Level
}

type Question struct {
	Text     string
	Anchor   string
	AnswerMD string
}

func (q *Question) GetText() string {
	return q.Text
}

func (q *Question) GetAnchor() string {
	return q.Anchor
}

func (q *Question) GetAnswerMD() string {
	return q.AnswerMD
}
