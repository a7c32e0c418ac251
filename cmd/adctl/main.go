package main

import "github.com/agentdeploy-dev/agentdeploy/pkg/cli"

func main() {
	cli.Execute()
}
