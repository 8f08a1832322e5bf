// data-parser - Regex Log Parsing Tool
//
// data-parser converts newline-delimited semi-structured log files into a
// table by applying a regular expression with capture groups to each line.
package main

import (
	"os"

	"github.com/zhiyong9654/data-parser/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
