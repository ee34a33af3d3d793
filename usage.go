package consolekit

import "fmt"

// RenderHelp writes the usage line and per-category help sections for sig to
// con. Arguments render as warning, options as success, flags as info, and
// category headers as bold. Sections appear only for non-empty categories;
// an empty signature produces just the usage line.
func RenderHelp(sig *Signature, helpText, executable string, con Console) {
	con.Output("Usage: "+executable+" ", StylePlain, false)
	for _, arg := range sig.Arguments() {
		con.Output("<"+arg.Name+"> ", StyleWarning, false)
	}
	for _, opt := range sig.Options() {
		con.Output("["+dashToken(opt.Name, opt.Short)+"] ", StyleSuccess, false)
	}
	for _, fl := range sig.Flags() {
		con.Output("["+dashToken(fl.Name, fl.Short)+"] ", StyleInfo, false)
	}
	con.Output("", StylePlain, true)

	if helpText != "" {
		con.Output("", StylePlain, true)
		con.Output(helpText, StylePlain, true)
	}

	pad := namePadding(sig)
	if len(sig.Arguments()) > 0 {
		con.Output("", StylePlain, true)
		con.Output("Arguments:", StyleBold, true)
		for _, arg := range sig.Arguments() {
			renderHelpItem(con, arg.Name, arg.Help, StyleWarning, pad)
		}
	}
	if len(sig.Options()) > 0 {
		con.Output("", StylePlain, true)
		con.Output("Options:", StyleBold, true)
		for _, opt := range sig.Options() {
			renderHelpItem(con, opt.Name, opt.Help, StyleSuccess, pad)
		}
	}
	if len(sig.Flags()) > 0 {
		con.Output("", StylePlain, true)
		con.Output("Flags:", StyleBold, true)
		for _, fl := range sig.Flags() {
			renderHelpItem(con, fl.Name, fl.Help, StyleInfo, pad)
		}
	}
}

// dashToken renders an option or flag for the usage line: "--eyes,-e" with a
// short, "--eyes" without.
func dashToken(name, short string) string {
	if short != "" {
		return "--" + name + ",-" + short
	}
	return "--" + name
}

// namePadding computes the help item column width: the longest name across
// all three categories plus two, so descriptions align between sections.
func namePadding(sig *Signature) int {
	longest := 0
	for _, arg := range sig.Arguments() {
		if len(arg.Name) > longest {
			longest = len(arg.Name)
		}
	}
	for _, opt := range sig.Options() {
		if len(opt.Name) > longest {
			longest = len(opt.Name)
		}
	}
	for _, fl := range sig.Flags() {
		if len(fl.Name) > longest {
			longest = len(fl.Name)
		}
	}
	return longest + 2
}

func renderHelpItem(con Console, name, help string, style Style, pad int) {
	con.Output(fmt.Sprintf("%*s", pad, name), style, false)
	if help != "" {
		con.Output(" "+help, StylePlain, true)
	} else {
		con.Output("", StylePlain, true)
	}
}
