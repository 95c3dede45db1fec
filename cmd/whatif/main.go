package main

import "os"

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
