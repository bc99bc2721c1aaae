package main

import "github.com/sdorani/portfolio/cmd"

func main() {
	cmd.Execute()
}
