package main

import "github.com/plantdesk/portalctl/cmd"

func main() {
	cmd.Execute()
}
