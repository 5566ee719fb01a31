// adminctl provisions back-office accounts.  Admin users are never created
// through the HTTP API, and no credentials are ever embedded in source: the
// operator supplies them on the command line against the same environment
// the server runs with.
//
//	adminctl add -username alice -password 's3cret'
//	adminctl remove -username alice
//	adminctl list
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tcprodojo/backend/internal/config"
	"github.com/tcprodojo/backend/internal/database"
	"github.com/tcprodojo/backend/internal/model"
	"github.com/tcprodojo/backend/internal/repository"
	"github.com/tcprodojo/backend/internal/utils"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	_ = godotenv.Load()
	cfg := config.LoadStore()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Open(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("connect to document store: %v", err)
	}
	defer func() {
		if err := database.Close(client, 5*time.Second); err != nil {
			log.Printf("disconnect: %v", err)
		}
	}()

	admins := repository.NewAdmin(client.Database(cfg.DBName))

	switch os.Args[1] {
	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		username := fs.String("username", "", "login name for the new admin")
		password := fs.String("password", "", "password for the new admin")
		_ = fs.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			log.Fatal("add: -username and -password are required")
		}
		hash, err := utils.HashPassword(*password, cfg.BcryptCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u := &model.AdminUser{Username: *username, PasswordHash: hash}
		if err := admins.Create(ctx, u); err != nil {
			log.Fatalf("create admin %q: %v", *username, err)
		}
		fmt.Printf("created admin %q\n", *username)

	case "remove":
		fs := flag.NewFlagSet("remove", flag.ExitOnError)
		username := fs.String("username", "", "login name of the admin to remove")
		_ = fs.Parse(os.Args[2:])
		if *username == "" {
			log.Fatal("remove: -username is required")
		}
		if err := admins.DeleteByUsername(ctx, *username); err != nil {
			log.Fatalf("remove admin %q: %v", *username, err)
		}
		fmt.Printf("removed admin %q\n", *username)

	case "list":
		users, err := admins.List(ctx)
		if err != nil {
			log.Fatalf("list admins: %v", err)
		}
		for _, u := range users {
			fmt.Printf("%s\tcreated %s\n", u.Username, u.CreatedAt.Time().Format(time.RFC3339))
		}

	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: adminctl <add|remove|list> [flags]")
	os.Exit(2)
}
