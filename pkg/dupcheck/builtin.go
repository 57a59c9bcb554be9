package dupcheck

// Built-in format names.
const (
	FormatCallHi    = "call-hi"
	FormatHi        = "hi"
	FormatExeHi     = "exe-hi"
	FormatGenerated = "generated"

	// DefaultFormat is the current scheme convention.
	DefaultFormat = FormatCallHi
)

// Generated lines read exe 'hi' 'Name term=...', so no quote closes the name.
var (
	callHiRule = MustRule("call s:hi(", `^call s:hi\('(\w+)'`)
	hiRule     = MustRule("hi ", `^hi (\w+)`)
	exeHiRule  = MustRule("exe 'hi' ", `^exe 'hi' '(\w+)`)
)

func init() {
	registerBuiltins()
}

func registerBuiltins() {
	builtins := []Format{
		NewFormat(FormatCallHi, "Highlights declared through the s:hi() helper: call s:hi('Name', ...)", callHiRule),
		NewFormat(FormatHi, "Plain highlight commands: hi Name ...", hiRule),
		NewFormat(FormatExeHi, "Highlight commands built with :execute: exe 'hi' 'Name ...'", exeHiRule),
		NewFormat(FormatGenerated, "Generator output mixing plain and :execute highlight commands", hiRule, exeHiRule),
	}
	for _, f := range builtins {
		f.Builtin = true
		Register(f)
	}
}
