package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/andyrewlee/gridpad/internal/poll"
)

func buildTokenCommand() *cobra.Command {
	var account string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the poll bearer token in the OS keychain",
	}
	cmd.PersistentFlags().StringVar(&account, "account", "", "Keychain account (default from config)")

	resolve := func(cmd *cobra.Command) (string, error) {
		if account != "" {
			return account, nil
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return "", err
		}
		return cfg.Poll.TokenAccount, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [token]",
		Short: "Store a token; reads one line from stdin when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := resolve(cmd)
			if err != nil {
				return err
			}
			token := ""
			if len(args) == 1 {
				token = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("no token provided")
				}
				token = line
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("no token provided")
			}
			if err := poll.StoreToken(acct, token); err != nil {
				return fmt.Errorf("store token: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored token for %q\n", acct)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := resolve(cmd)
			if err != nil {
				return err
			}
			token, err := poll.LoadToken(acct)
			if errors.Is(err, keyring.ErrNotFound) {
				fmt.Fprintf(cmd.ErrOrStderr(), "No token stored for %q\n", acct)
				return exitError{code: 1}
			}
			if err != nil {
				return fmt.Errorf("load token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := resolve(cmd)
			if err != nil {
				return err
			}
			err = poll.DeleteToken(acct)
			if err != nil && !errors.Is(err, keyring.ErrNotFound) {
				return fmt.Errorf("delete token: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed token for %q\n", acct)
			return nil
		},
	})
	return cmd
}
