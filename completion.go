package consolekit

import "strings"

// CompletionTokens returns the flat completion candidates for sig: argument
// names bare, then option names, then flag names with a "--" prefix, all in
// schema order.
func CompletionTokens(sig *Signature) []string {
	var toks []string
	for _, arg := range sig.Arguments() {
		toks = append(toks, arg.Name)
	}
	for _, opt := range sig.Options() {
		toks = append(toks, "--"+opt.Name)
	}
	for _, fl := range sig.Flags() {
		toks = append(toks, "--"+fl.Name)
	}
	return toks
}

// RenderCompletion emits the completion candidates as a single unstyled,
// space-joined line for shells to split.
func RenderCompletion(sig *Signature, con Console) {
	con.Output(strings.Join(CompletionTokens(sig), " "), StylePlain, true)
}
