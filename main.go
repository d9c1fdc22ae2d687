package main

import "github.com/oceanmodeling/goswe/cmd"

func main() {
	cmd.Execute()
}
