package main

import "github.com/aman-choudhary9785/iscode/cmd"

func main() {
	cmd.Execute()
}
