package commands

import (
	"fmt"
	"os"

	"devblog/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("devblog error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`devblog - a blogging backend

Usage:
  devblog run <config.yml>   start the server
  devblog version            print the version
  devblog help               show this help`) //nolint
}
