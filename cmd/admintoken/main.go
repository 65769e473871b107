// Command admintoken prints a bearer token for the settings endpoints.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ShopOrder/config/environment"
	"ShopOrder/middleware"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := environment.Load()
	if cfg.Admin.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := middleware.SignAdminToken(cfg.Admin.JWTSecret, *subject, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
