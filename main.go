package main

import "github.com/nuts-foundation/nuts-contract-service/cmd"

func main() {
	cmd.Execute()
}
