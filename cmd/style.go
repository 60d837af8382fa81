package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func renderBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("hip ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oom", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func renderListenInfo(port string, allow []string) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pbox.WithTitle("Server").WithTitleTopLeft().Sprintf(
		"Listening on :%s\nAllowed origins: %s", port, strings.Join(allow, ", "))
	pterm.Println(info)
}
