package main

import (
	"vexscout-backend/cmd/vexscout/cmd"
)

func main() {
	cmd.Execute()
}
