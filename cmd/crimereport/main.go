// Package main provides the crimereport CLI.
package main

import "github.com/flyinginsectsunpig/crimereport/internal/cli"

func main() {
	cli.Execute()
}
