// Package main provides the CLI entrypoint for chargechime.
package main

func main() {
	Execute()
}
