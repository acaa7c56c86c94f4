package main

import "github.com/fatih/color"

// Terminal diagnostics printed outside the tcell screen
var (
	brand  = color.New(color.FgHiGreen, color.Bold)
	subtle = color.New(color.FgHiBlack)
	warn   = color.New(color.FgYellow)
	bad    = color.New(color.FgRed)
)
