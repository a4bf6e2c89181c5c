package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/waitinglist/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the waitinglist testcontainers with the environment variables from the .env file.
MariaDB and redis always start. The authorizer starts when AUTHZ_IMAGE is set,
and the server when APP_IMAGE names an image that already exists locally.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)
	defer stop()

	testContainers, err := testutil.StartContainers(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to create test containers: %v\n", err)
	}

	<-ctx.Done()
	log.Printf("\nReceived signal, terminating test containers...\n")
	testContainers.Terminate(nil)
}
