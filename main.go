// Command splicer applies idempotent structural patches to text files.
package main

import "github.com/mouse-blink/splicer/cmd"

func main() {
	cmd.Execute()
}
