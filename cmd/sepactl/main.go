package main

import "github.com/finworks/go-sepa-export/cmd/sepactl/cmd"

func main() {
	cmd.Execute()
}
