// Command report evaluates a campaign dataset once and prints the result as
// JSON. It shares the pacing engine and use case with the HTTP server.
package main

func main() {
	Execute()
}
