package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smmpanel/panel/internal/infrastructure/auth"
	"github.com/smmpanel/panel/internal/infrastructure/config"
	"github.com/smmpanel/panel/internal/shared/authorization"
	"github.com/smmpanel/panel/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint
	role       string
	ttl        time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newIssueCommand())

	return cmd
}

func newIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token",
		Long:  `Issue an access token signed with the configured secret, for operators and scripts calling the admin API.`,
		RunE:  runIssue,
	}

	cmd.Flags().UintVar(&userID, "user-id", 1, "User id carried by the token")
	cmd.Flags().StringVar(&role, "role", authorization.RoleAdmin.String(), "Role carried by the token (admin, user)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")

	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive")
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	signed, err := svc.Generate(userID, authorization.ParseUserRole(role), ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
