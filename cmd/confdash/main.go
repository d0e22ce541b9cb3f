package main

import "github.com/JonMunkholm/confdash/cmd/confdash/commands"

func main() {
	commands.Execute()
}
