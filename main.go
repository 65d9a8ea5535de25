// Command docgap reports public C# APIs that the reference documentation
// never mentions.
package main

import "github.com/mouse-blink/docgap/cmd"

func main() {
	cmd.Execute()
}
