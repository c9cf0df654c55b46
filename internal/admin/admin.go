// Package admin implements the moosagectl command tree over the same stores the API uses.
package admin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"moosage/internal/domain/repository"
	"moosage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// App bundles what the commands operate on.
type App struct {
	Auth     usecase.AuthUsecase
	Users    repository.UserRepository
	Moosages repository.MoosageRepository
	Activity usecase.ActivityUsecase

	// ReadPassword reads a secret without echo. Nil uses the controlling terminal.
	ReadPassword func() ([]byte, error)

	// APILive reports whether an API process owns the user document. Nil skips the check.
	APILive func(ctx context.Context) bool
}

// ErrAPIRunning is returned by writing commands while the API serves the same documents.
var ErrAPIRunning = errors.New("the moosage API is running and owns users.json, stop it first")

// HealthProbe returns an APILive check that GETs healthURL.
func HealthProbe(healthURL string, timeout time.Duration) func(ctx context.Context) bool {
	client := &http.Client{Timeout: timeout}

	return func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
		if err != nil {
			return false
		}

		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}
}

// NewRootCommand builds the moosagectl command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "moosagectl",
		Short:         "Administer moosage users, posts and activity",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	userCmd.AddCommand(newUserAddCommand(app), newUserShowCommand(app), newUserListCommand(app))

	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Inspect moosages",
	}
	postCmd.AddCommand(newPostListCommand(app))

	activityCmd := &cobra.Command{
		Use:   "activity",
		Short: "Inspect the activity log written by the worker",
	}
	activityCmd.AddCommand(newActivityTailCommand(app))

	root.AddCommand(userCmd, postCmd, activityCmd)

	return root
}

func newUserAddCommand(app *App) *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "add <username> <email>",
		Short: "Register a user with the same rules as signup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The stores lock per process only.
			if app.APILive != nil && app.APILive(cmd.Context()) {
				return ErrAPIRunning
			}

			password, err := app.readNewPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			user, err := app.Auth.RegisterUser(cmd.Context(), &usecase.RegisterUserInput{
				Username: args[0],
				Email:    args[1],
				Password: password,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Username, user.ID)

			return errors.WithStack(err)
		},
	}
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from the first line of stdin")

	return cmd
}

func newUserShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <usernameOrEmail>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Users.FindByUsernameOrEmail(cmd.Context(), args[0])
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Errorf("no user matches %q", args[0])
			}
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "id\t%s\n", user.ID)
			fmt.Fprintf(w, "username\t%s\n", user.Username)
			fmt.Fprintf(w, "email\t%s\n", user.Email)

			return errors.WithStack(w.Flush())
		},
	}
}

func newUserListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.Users.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL")
			for _, user := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\n", user.ID, user.Username, user.Email)
			}

			return errors.WithStack(w.Flush())
		},
	}
}

func newPostListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List moosages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			moosages, err := app.Moosages.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tAUTHOR\tCREATED\tLIKES\tEDITED\tCONTENT")
			for _, m := range moosages {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\t%s\n",
					m.ID, m.AuthorUsername, m.CreatedAt.Format(time.RFC3339), m.LikeCount(), m.Edited, oneLine(m.Content))
			}

			return errors.WithStack(w.Flush())
		},
	}
}

func newActivityTailCommand(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show the most recent activity events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := app.Activity.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "TIME\tTYPE\tMOOSAGE\tACTOR\tAUTHOR")
			for _, e := range events {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					e.OccurredAt.Format(time.RFC3339), e.Type, e.MoosageID, e.ActorID, e.AuthorID)
			}

			return errors.WithStack(w.Flush())
		},
	}
	cmd.Flags().IntVarP(&limit, "lines", "n", 20, "number of events to show")

	return cmd
}

// readNewPassword reads the password from stdin or prompts twice on the terminal.
func (app *App) readNewPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "read password from stdin")
		}

		return strings.TrimRight(line, "\r\n"), nil
	}

	read := app.ReadPassword
	if read == nil {
		read = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
	}

	out := cmd.ErrOrStderr()
	fmt.Fprint(out, "Password: ")
	first, err := read()
	fmt.Fprintln(out)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	fmt.Fprint(out, "Repeat password: ")
	second, err := read()
	fmt.Fprintln(out)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}

	return string(first), nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
