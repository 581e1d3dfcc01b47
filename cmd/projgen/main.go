// Command projgen generates runnable Python starter projects with a
// language model.
package main

import "github.com/iPascal619/python-project-generator/internal/cli"

func main() {
	cli.Execute()
}
