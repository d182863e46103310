package formatter

import "github.com/fatih/color"

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	kindStyle    = color.New(color.FgYellow, color.Bold)
	nameStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	passStyle    = color.New(color.FgGreen, color.Bold)
	noStyle      = color.New(color.FgWhite)
)
