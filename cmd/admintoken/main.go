// Command admintoken prints a signed admin bearer token for the protected
// booking listing. It reads ADMIN_JWT_SECRET and ADMIN_TOKEN_TTL_MIN from
// the environment (or .env) like the server does.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/middleware"
	"github.com/iliyamo/hotel-booking/internal/utils"
)

func main() {
	subject := flag.String("sub", "admin", "subject claim")
	ttl := flag.Int("ttl", 0, "lifetime in minutes (default ADMIN_TOKEN_TTL_MIN)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.AdminJWTSecret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}
	minutes := cfg.AdminTokenTTLMin
	if *ttl > 0 {
		minutes = *ttl
	}

	tok, err := utils.NewAccessToken(cfg.AdminJWTSecret, *subject, middleware.RoleAdmin, minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign token:", err)
		os.Exit(1)
	}
	fmt.Println(tok.Token)
	fmt.Fprintln(os.Stderr, "expires", tok.Exp.Format("2006-01-02T15:04:05Z07:00"))
}
