package main

import "github.com/MeKo-Tech/pixelops/internal/cmd"

func main() {
	cmd.Execute()
}
