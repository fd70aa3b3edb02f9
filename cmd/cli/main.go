// Command cli is an operator tool for provisioning PromptEase accounts
// without going through the web signup form. It prompts for the username,
// the OpenRouter API key and a password (read without echo) and creates the
// record against the configured store.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mkravets/promptease/internal/cryptox"
	"github.com/mkravets/promptease/internal/server/config"
	"github.com/mkravets/promptease/internal/server/repositories/repomanager"
	"github.com/mkravets/promptease/internal/server/services"
)

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt + "\n> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readPassword() ([]byte, error) {
	fmt.Print("Enter password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return pw, err
}

func main() {

	cfg := config.LoadConfig()

	repos, err := repomanager.New(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer repos.Close()

	users := services.NewUserService(repos.Users())
	reader := bufio.NewReader(os.Stdin)

	username, err := readLine(reader, "Enter user name")
	if err != nil {
		log.Fatal(err)
	}

	apiKey, err := readLine(reader, "Enter OpenRouter API key")
	if err != nil {
		log.Fatal(err)
	}

	password, err := readPassword()
	if err != nil {
		log.Fatal(err)
	}
	defer cryptox.Wipe(password)

	if _, err := users.Register(context.Background(), username, string(password), apiKey); err != nil {
		log.Fatalf("error creating account: %v", err)
	}

	fmt.Println("Success!")
}
