package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitrine/internal/authclient"
	"vitrine/pkg/session"
)

func newLoginCmd(configPath *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.SignIn(cmd.Context(), email, password); err != nil {
				return err
			}
			user, _ := a.Session().User()
			fmt.Fprintf(cmd.OutOrStdout(), "Bem-vindo, %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(configPath *string) *cobra.Command {
	var input authclient.SignUpInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.SignUp(cmd.Context(), input); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Conta criada. Use `vitrine login` para entrar.")
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", "account password")
	cmd.Flags().StringVar(&input.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.Address, "address", "", "address")
	return cmd
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session and the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada.")
			return nil
		},
	}
}

func newMeCmd(configPath *string) *cobra.Command {
	me := &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			if err := requireSession(a); err != nil {
				return err
			}
			user, _ := a.Session().User()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Nome:     %s\n", user.Name)
			fmt.Fprintf(out, "Email:    %s\n", user.Email)
			if user.PhoneNumber != "" {
				fmt.Fprintf(out, "Telefone: %s\n", user.PhoneNumber)
			}
			if user.Address != "" {
				fmt.Fprintf(out, "Endereço: %s\n", user.Address)
			}
			return nil
		},
	}
	me.AddCommand(newMeUpdateCmd(configPath))
	return me
}

func newMeUpdateCmd(configPath *string) *cobra.Command {
	var name, phone, address, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit profile fields (local only; edits are not synced to the server)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			if err := requireSession(a); err != nil {
				return err
			}
			update := session.ProfileUpdate{}
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("phone") {
				update.PhoneNumber = &phone
			}
			if cmd.Flags().Changed("address") {
				update.Address = &address
			}
			if cmd.Flags().Changed("avatar") {
				update.Avatar = &avatar
			}
			if err := a.Session().UpdateProfile(update); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Perfil atualizado.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "address")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")
	return cmd
}
