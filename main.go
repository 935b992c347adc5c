package main

import "github.com/alexiusacademia/gorebar/cmd"

func main() {
	cmd.Execute()
}
