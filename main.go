package main

import (
	"gitlab.com/gpufleet/worker-management-service/cmd"
)

func main() {
	// Execute command-line interface; should be the last call in main()
	cmd.Execute()
}
