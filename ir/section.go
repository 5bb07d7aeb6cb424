package ir

type Section interface {
	GetName() string
	GetAnchor() string
	GetLevel() int
}
