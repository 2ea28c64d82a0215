package main

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/billchain/verifier"
)

func printUsage(w io.Writer) {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Bill", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chain", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Fprint(w, banner)
	}
	pterm.Info.WithWriter(w).Println("Please try again with the file name you want to verify.")
	pterm.Fprintln(w, "usage: billchain <file>")
}

// printResult writes the balance report of a valid chain, or the diagnostic
// of an invalid one followed by the offending line and the invalid marker.
func printResult(w io.Writer, res verifier.Result) {
	if res.Valid() {
		for _, line := range res.Lines() {
			pterm.Fprintln(w, line)
		}
		return
	}
	if res.Err != nil {
		pterm.Error.WithWriter(w).Println(res.Err.Error())
	}
	if res.Line != "" {
		pterm.Fprintln(w, res.Line)
	}
	pterm.Fprintln(w, verifier.InvalidMarker)
}
