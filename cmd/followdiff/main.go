// Package main provides the command-line interface for followdiff.
// It compares the following and followers files of an Instagram data export
// and writes a report of the accounts that don't follow back.
package main

import (
	"context"

	"github.com/mrjoshuak/followdiff/cmd/followdiff/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
