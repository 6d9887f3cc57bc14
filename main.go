package main

import "github.com/kbelhadj/roster-management/cmd"

func main() {
	cmd.Execute()
}
