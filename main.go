package main

import "github.com/hoppxi/xmon/internal/cmd"

func main() {
	cmd.Execute()
}
