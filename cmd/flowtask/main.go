// Package main provides the flowtask CLI.
package main

import "github.com/mesh-intelligence/flowtask/internal/cli"

func main() {
	cli.Execute()
}
