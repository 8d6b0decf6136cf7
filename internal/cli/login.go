package cli

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the catalog server",
	Long: `Sign in to the catalog server. The session cookie is stored next to
the config file and the signed-in username is remembered until logout.

Example:
  catman login
  catman login --username admin`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return err
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return err
	}

	if strings.TrimSpace(username) == "" {
		prompt := promptui.Prompt{Label: "Username or email"}
		username, err = prompt.Run()
		if err != nil {
			return fmt.Errorf("login cancelled")
		}
	}
	if password == "" {
		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
		}
		password, err = prompt.Run()
		if err != nil {
			return fmt.Errorf("login cancelled")
		}
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.Login(username, password)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{
			"result": 1,
			"value":  result,
		})
		return nil
	}

	message := result.Message
	if message == "" {
		message = "Login successful."
	}
	fmt.Println(message)
	fmt.Printf("Signed in as %s\n", GetConfig().GetUsername())
	return nil
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the catalog server",
	Long: `Sign out of the catalog server. The stored username and session cookie
are cleared even if the server cannot be reached.`,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.Logout()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{
			"result": 1,
			"value":  result,
		})
		return nil
	}

	message := result.Message
	if message == "" {
		message = "Logout successful."
	}
	fmt.Println(message)
	return nil
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in username",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := GetConfig().GetUsername()
		if jsonOutput {
			printJSON(map[string]any{
				"username": username,
			})
			return nil
		}
		if username == "" {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Println(username)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "Username or email")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
