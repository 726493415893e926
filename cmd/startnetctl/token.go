package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/pkg/jwt"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Tokens JWT para pruebas manuales",
	}

	var userID, accountType string
	var minutes int
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Emite un token firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !entity.IsValidAccountType(accountType) {
				return fmt.Errorf("token: --type debe ser %s o %s", entity.AccountEntrepreneur, entity.AccountInvestor)
			}
			if minutes <= 0 {
				minutes = a.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(a.cfg.JWT.Secret, userID, accountType, a.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	issue.Flags().StringVar(&userID, "user", "", "id de la cuenta")
	issue.Flags().StringVar(&accountType, "type", entity.AccountEntrepreneur, "entrepreneur | investor")
	issue.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	_ = issue.MarkFlagRequired("user")

	cmd.AddCommand(issue)
	return cmd
}
