package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper/internal/service"
	"github.com/dtroode/notekeeper/internal/token"
)

var tokenCmd = &cobra.Command{
	Use:   "token <owner>",
	Short: "Mint a development bearer token with the shared secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTokenService(token.NewJWT(cfg.JWTSecret), clientLogger)
		tok, err := svc.Issue(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
