package main

import (
	"fmt"
	"log"
	"os"

	"fundplanner/cmd"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, err := cmd.InitializeDependencies(cmd.DefaultConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	apiHandler.Logger.Infow("starting api", "port", apiHandler.Config.Api.Port)
	err = apiHandler.StartApi(apiHandler.Config.Api.Port)
	if err != nil {
		log.Fatal(err)
	}
}
