package main

import (
	"github.com/Mshel/sshnake/cmd/sshnake/commands"
)

func main() {
	commands.Execute()
}
