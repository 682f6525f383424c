package main

import (
	"os"

	"github.com/dmitrijs2005/gophspend/internal/buildinfo"
	"github.com/dmitrijs2005/gophspend/internal/server"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	os.Exit(server.Main())

}
