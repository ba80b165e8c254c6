package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pawmart/pawmart/internal/identity"
	"github.com/pawmart/pawmart/internal/theme"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func authCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Register, sign in and manage your profile",
	}

	authRoot.AddCommand(
		authRegisterCmd(),
		authLoginCmd(),
		authLoginIdpCmd(),
		authWhoamiCmd(),
		authUpdateProfileCmd(),
		authLogoutCmd(),
	)

	return authRoot
}

// signedIn stores sess and greets the user.
func (a *app) signedIn(sess *identity.Session) error {
	if err := a.state.SetSession(sess); err != nil {
		return err
	}
	a.notifier.Success(fmt.Sprintf("Welcome, %s!", sess.Profile.Name()))
	return nil
}

// authFailed shows the provider's message before returning err.
func (a *app) authFailed(err error) error {
	a.notifier.Error(err.Error())
	return err
}

func authRegisterCmd() *cobra.Command {
	var reg identity.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: "Create an account with email and password. Passwords need at least\n" +
			"six characters with an uppercase and a lowercase letter.",
		Example: `  pawmart auth register --name "Rina Akter" --email rina@example.com --password Secret1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reg.Email == "" || reg.Password == "" {
				return errors.New("--email and --password are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			sess, err := a.idp.SignUp(cmd.Context(), reg)
			if err != nil {
				return a.authFailed(err)
			}
			return a.signedIn(sess)
		},
	}
	cmd.Flags().StringVar(&reg.Name, "name", "", "display name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address")
	cmd.Flags().StringVar(&reg.PhotoURL, "photo-url", "", "profile photo URL")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password")

	return cmd
}

func authLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in with email and password",
		Example: `  pawmart auth login --email rina@example.com --password Secret1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			sess, err := a.idp.SignIn(cmd.Context(), email, password)
			if err != nil {
				return a.authFailed(err)
			}
			return a.signedIn(sess)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")

	return cmd
}

func authLoginIdpCmd() *cobra.Command {
	var provider, token string

	cmd := &cobra.Command{
		Use:   "login-idp",
		Short: "Sign in with an OAuth provider ID token",
		Long: "Exchange an ID token from an OAuth provider (Google by default) for\n" +
			"a PawMart session. First-time sign-ins create the account.",
		Example: `  pawmart auth login-idp --id-token "$GOOGLE_ID_TOKEN"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "" {
				return errors.New("--id-token is required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			sess, err := a.idp.SignInWithIdp(cmd.Context(), provider, token)
			if err != nil {
				return a.authFailed(err)
			}
			return a.signedIn(sess)
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "google.com", "provider ID")
	cmd.Flags().StringVar(&token, "id-token", "", "provider ID token")

	return cmd
}

func authWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}

			profile := sess.Profile
			if fresh, err := a.idp.Lookup(cmd.Context(), sess.IDToken); err != nil {
				if errors.Is(err, identity.ErrSessionExpired) {
					_ = a.state.SignOut()
					return a.authFailed(err)
				}
				a.log.Warn("profile lookup failed, showing cached profile", "error", err)
			} else {
				profile = *fresh
				if err := a.state.UpdateProfile(profile); err != nil {
					return err
				}
			}

			if jsonOutput() {
				return outputJSON(profile)
			}
			return printProfile(cmd.OutOrStdout(), a.styles, &profile)
		},
	}
}

func authUpdateProfileCmd() *cobra.Command {
	var name, photo string

	cmd := &cobra.Command{
		Use:     "update-profile",
		Short:   "Change your display name or photo",
		Example: `  pawmart auth update-profile --name "Rina A."`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" && photo == "" {
				return errors.New("set --name or --photo-url")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}

			profile, err := a.idp.UpdateProfile(cmd.Context(), sess.IDToken, name, photo)
			if err != nil {
				return a.authFailed(err)
			}
			if err := a.state.UpdateProfile(*profile); err != nil {
				return err
			}
			a.notifier.Success("Profile updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&photo, "photo-url", "", "profile photo URL")

	return cmd
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.state.SignOut(); err != nil {
				return err
			}
			a.notifier.Success("Signed out.")
			return nil
		},
	}
}

func printProfile(w io.Writer, st theme.Styles, p *domain.UserProfile) error {
	printTitle(w, st, p.Name())
	tw := newTabWriter(w)
	tw.writef("Email:\t%s\n", p.Email)
	tw.writef("Verified:\t%v\n", p.EmailVerified)
	if p.PhotoURL != "" {
		tw.writef("Photo:\t%s\n", p.PhotoURL)
	}
	if p.Metadata.CreationTime != "" {
		tw.writef("Member since:\t%s\n", p.Metadata.CreationTime)
	}
	if p.Metadata.LastSignInTime != "" {
		tw.writef("Last sign-in:\t%s\n", p.Metadata.LastSignInTime)
	}
	tw.writef("UID:\t%s\n", p.UID)
	return tw.finish()
}
