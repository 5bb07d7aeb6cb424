package ir

type QuestionEntry interface {
	GetText() string
	GetAnchor() string
	GetAnswerMD() string
}
