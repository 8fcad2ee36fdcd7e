// Command langid-client talks to langid-server over its plain TCP protocol
//
// Usage:
//
//	# classify one text with the default backend
//	langid-client classify "This is my sample text"
//
//	# alternate backend with a hint
//	langid-client classify --classifier alt --hint de "Das ist ein Test"
//
//	# interactive loop: every line goes to default, alternate and alternate+hint
//	langid-client repl
package main

func main() {
	Execute()
}
