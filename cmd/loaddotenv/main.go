package main

import (
	ldcmd "github.com/initializ/loaddotenv/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ldcmd.SetVersionInfo(version, commit)
	ldcmd.Execute()
}
