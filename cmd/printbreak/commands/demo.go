//go:build !printbreak_release

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/printbreak/pkg/printbreak"
	"github.com/arthur-debert/printbreak/pkg/session"
)

type demoStatus int

const (
	statusPending demoStatus = iota
	statusActive
	statusSuspended
)

func (s demoStatus) String() string {
	switch s {
	case statusActive:
		return "Active"
	case statusSuspended:
		return "Suspended"
	default:
		return "Pending"
	}
}

type demoAddress struct {
	Street string
	City   string
	Tags   []string
}

type demoUser struct {
	ID       int
	Name     string
	Email    *string
	Status   demoStatus
	Address  demoAddress
	Roles    map[string]bool
	Settings struct {
		Theme   string
		Retries int
		Limits  struct {
			Daily  int
			Hourly int
		}
	}
}

const demoJSON = `{"service":"billing","replicas":3,"ports":[8080,8443],"healthy":true,"owner":null}`

const demoTOML = `[server]
host = "localhost"
port = 8080

[database]
url = "postgres://localhost/app"
pool = 10
`

const demoYAML = `name: printbreak
steps:
  - build
  - test
env:
  CI: true
  RETRIES: 3
`

func newDemoCmd() *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through a few checkpoints over sample values",
		Long: `Demo hits a series of checkpoints showing numbers, strings, collections,
nested structs and strings holding JSON, TOML and YAML. Answer each prompt
as you would in a real program: Enter continues, m shows the full output,
t prints a trace, c copies, s skips the rest and q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []session.Option{
				session.WithInput(cmd.InOrStdin()),
				session.WithOutput(cmd.ErrOrStderr()),
			}
			if nonInteractive {
				opts = append(opts, session.WithInteractive(false))
			}
			printbreak.SetDefault(session.New(opts...))
			defer printbreak.SetDefault(nil)

			runDemo()
			fmt.Fprintln(cmd.OutOrStdout(), "demo finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Print the panels without waiting for commands")

	return cmd
}

func runDemo() {
	count := 42
	ratio := 0.75
	greeting := "hello, checkpoint"
	printbreak.Break(count, ratio, greeting)

	email := "ada@example.com"
	user := demoUser{
		ID:     7,
		Name:   "Ada",
		Email:  &email,
		Status: statusActive,
		Address: demoAddress{
			Street: "12 Analytical Row",
			City:   "London",
			Tags:   []string{"home", "billing"},
		},
		Roles: map[string]bool{"admin": true, "audit": false},
	}
	user.Settings.Theme = "dark"
	user.Settings.Retries = 3
	user.Settings.Limits.Daily = 1000
	user.Settings.Limits.Hourly = 50
	printbreak.Break(user, user.Status)

	primes := []int{2, 3, 5, 7, 11, 13}
	var missing *demoUser
	printbreak.Break(primes, missing)

	printbreak.Break(demoJSON, demoTOML, demoYAML)

	lines := make([]string, 80)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i+1)
	}
	printbreak.BreakIf(len(lines) > 50, lines)

	time.Sleep(5 * time.Millisecond)
	printbreak.Break(printbreak.Named("answer", count*2))

	printbreak.Break()
}
