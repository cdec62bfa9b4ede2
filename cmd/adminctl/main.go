// Command adminctl is a terminal client for the admin API. It drives the
// session controller the same way the browser dashboard does: login with
// lockout tracking, restore from a stored token, a live session countdown,
// and extend/logout.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xviridev-art/Portofolio/internal/session"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the admin API")
	tokenPath := flag.String("token-file", defaultTokenPath(), "where the session token is stored")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctrl := session.NewController(
		session.NewClient(*serverURL, nil),
		session.NewFileTokenStore(*tokenPath),
		session.Config{},
	)

	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "login":
		err = runLogin(ctx, ctrl)
	case "status":
		err = runStatus(ctx, ctrl)
	case "watch":
		err = runWatch(ctx, ctrl)
	case "logout":
		err = runLogout(ctx, ctrl)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: adminctl [flags] <command>

commands:
  login    authenticate and store a session token
  status   verify the stored token and show session state
  watch    run the session countdown; type "extend" to add time, "q" to quit
  logout   discard the stored session`)
	flag.PrintDefaults()
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adminctl-token"
	}
	return filepath.Join(home, ".adminctl", "token")
}

func runLogin(ctx context.Context, ctrl *session.Controller) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	fmt.Print("password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	identity, err := ctrl.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
	if err != nil {
		if errors.Is(err, session.ErrLockedOut) {
			return fmt.Errorf("locked out for %s after %d failed attempts",
				ctrl.LockoutRemaining().Round(time.Second), ctrl.FailedAttempts())
		}
		return err
	}

	fmt.Printf("logged in as %s (session expires in %s)\n",
		identity.Username, ctrl.SessionTimeRemaining().Round(time.Second))
	return nil
}

func runStatus(ctx context.Context, ctrl *session.Controller) error {
	identity, err := ctrl.Restore(ctx)
	if err != nil {
		fmt.Println("state:", ctrl.State())
		return err
	}
	fmt.Println("state:", ctrl.State())
	fmt.Println("user:", identity.Username)
	fmt.Println("role:", identity.Role)
	fmt.Println("remaining:", ctrl.SessionTimeRemaining().Round(time.Second))
	return nil
}

func runWatch(ctx context.Context, ctrl *session.Controller) error {
	if _, err := ctrl.Restore(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl.SetExpiryHandler(func() {
		fmt.Println("\nsession expired, logged out")
		cancel()
	})
	go ctrl.Run(ctx)

	// Reads commands off stdin while the ticker drives the countdown.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			switch strings.TrimSpace(scanner.Text()) {
			case "extend":
				deadline, err := ctrl.ExtendSession()
				if err != nil {
					fmt.Println("extend failed:", err)
					continue
				}
				fmt.Println("session extended until", deadline.Local().Format(time.Kitchen))
			case "q", "quit", "exit":
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !ctrl.IsAuthenticated() {
				continue
			}
			fmt.Printf("\rsession remaining: %-12s", ctrl.SessionTimeRemaining().Round(time.Second))
		}
	}
}

func runLogout(_ context.Context, ctrl *session.Controller) error {
	ctrl.Logout()
	fmt.Println("logged out")
	return nil
}
