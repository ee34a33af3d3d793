package consolekit

// Command pairs a Signature with the code that runs against its parsed
// Values. The Signature is built once and reused for every invocation;
// parsing, help text, and completion are all derived from it.
type Command interface {
	Signature() *Signature
	Help() string
	Run(values *Values, con Console) error
}

// Run matches args (conventionally os.Args) against cmd's signature and
// invokes it. "--help" or "-h" anywhere in the input renders help instead of
// running, unless the signature declares those names itself. A leading
// "__complete" token renders the completion candidates instead of running.
// Parse errors are returned untouched for the caller to present.
func Run(cmd Command, args []string, con Console) error {
	in := NewInput(args)
	sig := cmd.Signature()

	if helpRequested(sig, in.Remaining()) {
		RenderHelp(sig, cmd.Help(), in.Executable(), con)
		return nil
	}
	if tok, ok := in.Peek(); ok && tok == "__complete" {
		RenderCompletion(sig, con)
		return nil
	}

	vals, err := Match(sig, in)
	if err != nil {
		return err
	}
	return cmd.Run(vals, con)
}

// RunOrExit runs cmd against args with a stdout terminal and, on error,
// prints the error followed by help to stderr and exits 1.
func RunOrExit(cmd Command, args []string) {
	con := NewTerminal(stdoutWriter)
	if err := Run(cmd, args, con); err != nil {
		errCon := NewTerminal(stderrWriter)
		errCon.Output(err.Error(), StyleError, true)
		errCon.Output("", StylePlain, true)
		RenderHelp(cmd.Signature(), cmd.Help(), NewInput(args).Executable(), errCon)
		osExit(1)
	}
}

// helpRequested reports whether the input asks for help. The bare help
// tokens are only hijacked when the signature doesn't claim those names for
// its own options or flags.
func helpRequested(sig *Signature, toks []string) bool {
	for _, tok := range toks {
		if tok == "--help" && sig.LookupOption("help") == nil && sig.LookupFlag("help") == nil {
			return true
		}
		if tok == "-h" && sig.LookupOption("h") == nil && sig.LookupFlag("h") == nil {
			return true
		}
	}
	return false
}
