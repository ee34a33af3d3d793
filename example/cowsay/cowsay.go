package main

import (
	"fmt"
	"os"

	consolekit "github.com/KyleLeneau/console-kit"
)

type cowsay struct {
	sig *consolekit.Signature
}

func newCowsay() (*cowsay, error) {
	sig := consolekit.NewSignature()
	if err := consolekit.NewArgument("message").SetHelp("The message to print").Register(sig); err != nil {
		return nil, err
	}
	if err := consolekit.NewOption("eyes").SetShort("e").SetHelp("Change the cow's eyes").Register(sig); err != nil {
		return nil, err
	}
	if err := consolekit.NewOption("tongue").SetShort("t").SetHelp("Change the cow's tongue").Register(sig); err != nil {
		return nil, err
	}
	if err := consolekit.NewFlag("borg").SetShort("b").SetHelp("Borg mode").Register(sig); err != nil {
		return nil, err
	}
	return &cowsay{sig: sig}, nil
}

func (c *cowsay) Signature() *consolekit.Signature {
	return c.sig
}

func (c *cowsay) Help() string {
	return "Prints a cow with a message."
}

func (c *cowsay) Run(vals *consolekit.Values, con consolekit.Console) error {
	message, _ := vals.Argument("message")
	eyes := "oo"
	if v, ok := vals.Option("eyes"); ok {
		eyes = v
	}
	tongue := "  "
	if v, ok := vals.Option("tongue"); ok {
		tongue = v
	}
	if vals.Flag("borg") {
		eyes = "=="
	}

	cow := fmt.Sprintf(`
  %s
   \   ^__^
    \  (%s)\_______
       (__)\       )\/\
        %s  ||----w |
           ||     ||
`, message, eyes, tongue)

	con.Output(cow, consolekit.StylePlain, true)
	return nil
}

func main() {
	cmd, err := newCowsay()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	consolekit.RunOrExit(cmd, os.Args)
}
