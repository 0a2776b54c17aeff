// Command vista opens story documents in a pannable viewer, validates them,
// and replays scripted input against them headless.
package main

func main() {
	Execute()
}
