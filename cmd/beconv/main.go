package main

import "github.com/unkn0wn-root/beconv/cmd/beconv/cmd"

func main() {
	cmd.Execute()
}
