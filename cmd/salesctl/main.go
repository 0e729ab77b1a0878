// salesctl is a small terminal client for the commerce API. It keeps the
// signed-in session on disk between invocations, the same way the mobile
// clients keep theirs in secure storage.
//
// Usage:
//
//	salesctl [-api URL] login -email a@x.com -password secret
//	salesctl [-api URL] signup -name Alice -email a@x.com -password secret -role SALESPERSON
//	salesctl whoami
//	salesctl route
//	salesctl logout
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marketline/commerce-system/pkg/session"
)

func main() {
	apiURL := flag.String("api", envOr("COMMERCE_API_URL", "http://localhost:8080"), "base URL of the commerce API")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*apiURL, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "salesctl:", err)
		os.Exit(1)
	}
}

func run(apiURL, command string, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := newStore(apiURL)
	if err != nil {
		return err
	}
	store.Rehydrate(ctx)

	switch command {
	case "login":
		return login(ctx, store, args)
	case "signup":
		return signup(ctx, store, args)
	case "whoami":
		return whoami(store)
	case "route":
		return route(store)
	case "logout":
		return logout(ctx, store)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func newStore(apiURL string) (*session.Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	storage, err := session.NewFileStorage(filepath.Join(home, ".salesctl"))
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}
	return session.NewStore(session.NewClient(apiURL, nil), storage), nil
}

func login(ctx context.Context, store *session.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}
	if err := store.SignIn(ctx, *email, *password); err != nil {
		return err
	}
	cur := store.Current()
	fmt.Printf("signed in as %s (%s)\n", cur.Identity.ID, cur.Identity.Role)
	return nil
}

func signup(ctx context.Context, store *session.Store, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "", "ADMIN, SALESPERSON or DISTRIBUTOR")
	phone := fs.String("phone", "", "contact phone (optional)")
	_ = fs.Parse(args)

	if *name == "" || *email == "" || *password == "" || *role == "" {
		return fmt.Errorf("signup requires -name, -email, -password and -role")
	}
	err := store.SignUp(ctx, session.SignUpProfile{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     *role,
		Phone:    *phone,
	})
	if err != nil {
		return err
	}
	cur := store.Current()
	fmt.Printf("account created, signed in as %s (%s)\n", cur.Identity.ID, cur.Identity.Role)
	return nil
}

func whoami(store *session.Store) error {
	cur := store.Current()
	if !cur.Authenticated() {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s (%s)\n", cur.Identity.ID, cur.Identity.Role)
	return nil
}

func route(store *session.Store) error {
	group, ok := session.Route(store.Current())
	if !ok {
		return fmt.Errorf("session still loading")
	}
	fmt.Println(group)
	return nil
}

func logout(ctx context.Context, store *session.Store) error {
	if err := store.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
