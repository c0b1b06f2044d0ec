// Command token mints a session token for local testing against the
// gateway. It only needs JWT_SIGNING_KEY (and optionally JWT_EXPIRATION),
// from the environment or .env.
package main

import (
	"flag"
	"fmt"

	"mota/cmd"
	httpin "mota/internal/adapters/in/http"
	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

func main() {
	userID := flag.Int64("uid", 0, "backend user id")
	role := flag.Int("role", 0, "backend role code")
	flag.Parse()

	configs, err := cmd.LoadSessionConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	id, err := kernel.NewID(*userID)
	if err != nil {
		log.Fatalf("Invalid -uid: %v", err)
	}
	a, err := actor.NewActor(id, actor.Role(*role))
	if err != nil {
		log.Fatalf("Invalid actor: %v", err)
	}

	token, err := httpin.IssueSessionToken(configs.JWTSigningKey, a, configs.JWTExpiration)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}
	fmt.Println(token)
}
