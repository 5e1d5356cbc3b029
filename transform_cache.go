package fdict

// ProgramCache stores compiled transform programs keyed by program text. It
// lets repeated ExprTransform, CELTransform and JSTransform constructions
// reuse compilation work.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
