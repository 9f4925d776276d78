package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lpass/internal/domain"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME",
		Short: "Authenticate against the vault server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := newTerminalProvider()

			password, err := provider.RequestSecret("Master Password",
				"Enter the master password for "+args[0], "")
			if err != nil {
				return describe(err)
			}
			defer password.Destroy()

			sess := domain.NewSession(args[0], appCtx.Server)
			defer sess.Destroy()

			if err := appCtx.Engine.Login(context.Background(), sess, password, provider); err != nil {
				return describe(err)
			}

			fmt.Printf("Logged in as %s (uid %d).\n", sess.Username(), sess.UID())
			return nil
		},
	}
}

// describe turns the engine's error taxonomy into messages fit for a
// human, leaving the error itself intact for the exit status.
func describe(err error) error {
	var (
		otpErr    *domain.OtpRequiredError
		unsErr    *domain.UnsupportedError
		statusErr *domain.HTTPStatusError
	)
	switch {
	case errors.Is(err, domain.ErrUserAbort):
		fmt.Println("Login aborted.")
	case errors.Is(err, domain.ErrNoSecret):
		fmt.Println("No password entered; login aborted.")
	case errors.Is(err, domain.ErrInvalidCredentials):
		fmt.Println("The username or master password is incorrect.")
	case errors.Is(err, domain.ErrInvalidUser):
		fmt.Println("The server does not know this username.")
	case errors.As(err, &otpErr):
		fmt.Printf("The account requires a %s one-time password.\n", otpErr.Method)
	case errors.As(err, &unsErr):
		fmt.Printf("The account uses %s, which this client does not support.\n", unsErr.Mode)
	case errors.As(err, &statusErr):
		fmt.Printf("The server rejected the request (HTTP %d).\n", statusErr.Code)
	default:
		fmt.Printf("Login failed: %v.\n", err)
	}
	return err
}
