package ir

type Guide interface {
	GetTitle() string
	GetSlug() string
	GetLanguage() string
	GetRepoURL() string
	GetExtraAttributes() map[string]string
	GetDocuments() []Document
}
