package main

import "github.com/aalvaropc/pomyaml/internal/cli"

func main() {
	cli.Execute()
}
