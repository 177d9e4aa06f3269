// Command issue-token prints an admin access token for the catalog API.
// It signs with auth.jwt_secret from the server configuration.
//
// Usage:
//
//	issue-token --subject=ops@example.com [--ttl=1h]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/admincatalog-backend/internal/auth"
	"github.com/heartmarshall/admincatalog-backend/internal/config"
)

func main() {
	subject := flag.String("subject", "", "operator identity stored in the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --subject=ops@example.com [--ttl=1h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).
		GenerateAccessToken(*subject, auth.RoleAdmin)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
