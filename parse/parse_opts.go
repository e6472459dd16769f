package parse

type options struct {
	context string
}

type Option func(*options)

// InContext sets the context element fragments are parsed in. The
// context decides how the html5 algorithm treats content, e.g. table
// rows only survive in a table context.
func InContext(tag string) Option {
	return func(o *options) { o.context = tag }
}
