package parse

// Raw returns a derived Context with its frame chain cleared. Because this
// package threads a *Context into combinator constructors rather than
// through the Parser function signature itself, "run P raw" becomes
// "build P from a raw context": pass Raw(ctx) in place of ctx when
// constructing the sink-routed combinator (DelimitedListBoundedDefault,
// BracketDefaultIndex) whose errors should bypass any enclosing Section
// wrapping and surface the underlying typed error verbatim.
func Raw[Tok any](ctx *Context[Tok]) *Context[Tok] {
	return &Context[Tok]{sink: ctx.sink}
}

// Unrecoverable returns a derived Context with its error sink removed, so
// a combinator built from it treats every failure as fatal instead of
// routing it to a sink for substitution. As with Raw, this is applied at
// construction time: pass Unrecoverable(ctx) in place of ctx when building
// the combinator that should lose its recovery behavior.
func Unrecoverable[Tok any](ctx *Context[Tok]) *Context[Tok] {
	return &Context[Tok]{frames: ctx.frames}
}
