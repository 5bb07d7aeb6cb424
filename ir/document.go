package ir

import "time"

type Document interface {
	GetSlug() string
	GetTitle() string
	GetLayout() string
	GetOrder() int
	GetPrevSlug() string
	GetNextSlug() string
	GetDeclaredQuestionCount() int
	GetBodyMD() string
	GetFSPath() string
	GetWarnings() []string
	GetSections() []Section
	GetQuestions() []QuestionEntry
	SetUpdatedAt(updatedAt time.Time)
	GetUpdatedAt() time.Time
}
