// Package main provides the edmtypes CLI.
package main

import "github.com/mesh-intelligence/edmtypes/internal/cli"

func main() {
	cli.Execute()
}
