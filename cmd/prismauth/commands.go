package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prismworlds/prism-auth/pkg/accounts"
	"github.com/prismworlds/prism-auth/pkg/session"
)

var registerFlags struct {
	name     string
	email    string
	password string
	kind     string
	school   string
	state    string
	grade    string
	subject  string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account and sign it in",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := setup()
		if err != nil {
			return err
		}
		return report(manager.Register(cmd.Context(), session.RegisterInput{
			Name:     registerFlags.name,
			Email:    registerFlags.email,
			Password: registerFlags.password,
			Kind:     accounts.Kind(registerFlags.kind),
			School:   registerFlags.school,
			State:    registerFlags.state,
			Grade:    registerFlags.grade,
			Subject:  registerFlags.subject,
		}))
	},
}

var loginFlags struct {
	email    string
	password string
	kind     string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := setup()
		if err != nil {
			return err
		}
		return report(manager.Authenticate(cmd.Context(), loginFlags.email, loginFlags.password, accounts.Kind(loginFlags.kind)))
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := setup()
		if err != nil {
			return err
		}
		return report(manager.TerminateSession())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := setup()
		if err != nil {
			return err
		}
		account := manager.CurrentAccount()
		if account == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s <%s> (%s)\n", account.Name, account.Email, account.Kind)
		if account.School != "" {
			fmt.Printf("  school: %s\n", account.School)
		}
		if account.State != "" {
			fmt.Printf("  state: %s\n", account.State)
		}
		if account.Grade != "" {
			fmt.Printf("  grade: %s\n", account.Grade)
		}
		if account.Subject != "" {
			fmt.Printf("  subject: %s\n", account.Subject)
		}
		return nil
	},
}

var profileFlags struct {
	name    string
	school  string
	state   string
	grade   string
	subject string
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the signed-in account's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := setup()
		if err != nil {
			return err
		}

		var updates session.ProfileUpdate
		// Only flags the user actually set become part of the update
		if cmd.Flags().Changed("name") {
			updates.Name = &profileFlags.name
		}
		if cmd.Flags().Changed("school") {
			updates.School = &profileFlags.school
		}
		if cmd.Flags().Changed("state") {
			updates.State = &profileFlags.state
		}
		if cmd.Flags().Changed("grade") {
			updates.Grade = &profileFlags.grade
		}
		if cmd.Flags().Changed("subject") {
			updates.Subject = &profileFlags.subject
		}
		return report(manager.MutateProfile(updates))
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerFlags.name, "name", "", "full name (required)")
	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "email address (required)")
	registerCmd.Flags().StringVar(&registerFlags.password, "password", "", "password (required)")
	registerCmd.Flags().StringVar(&registerFlags.kind, "kind", "", "account type: student or teacher (required)")
	registerCmd.Flags().StringVar(&registerFlags.school, "school", "", "school name")
	registerCmd.Flags().StringVar(&registerFlags.state, "state", "", "state of residence")
	registerCmd.Flags().StringVar(&registerFlags.grade, "grade", "", "grade (students)")
	registerCmd.Flags().StringVar(&registerFlags.subject, "subject", "", "subject taught (teachers)")

	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "email address (required)")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "password (required)")
	loginCmd.Flags().StringVar(&loginFlags.kind, "kind", "", "account type: student or teacher (required)")

	profileCmd.Flags().StringVar(&profileFlags.name, "name", "", "full name")
	profileCmd.Flags().StringVar(&profileFlags.school, "school", "", "school name")
	profileCmd.Flags().StringVar(&profileFlags.state, "state", "", "state of residence")
	profileCmd.Flags().StringVar(&profileFlags.grade, "grade", "", "grade (students)")
	profileCmd.Flags().StringVar(&profileFlags.subject, "subject", "", "subject taught (teachers)")
}
