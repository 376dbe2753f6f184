package main

import "github.com/nikogura/resume-adapter/cmd"

func main() {
	cmd.Execute()
}
