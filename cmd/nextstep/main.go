package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"nextstep-go/internal/api"
	"nextstep-go/internal/app"
	"nextstep-go/internal/config"
	"nextstep-go/internal/identity"
	"nextstep-go/internal/nextstep"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "Login", "UploadResume").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

// authError maps identity provider failures to their user-facing text.
// Other errors pass through unchanged.
func authError(err error) error {
	var idErr *identity.AuthError
	if errors.As(err, &idErr) {
		return errors.New(identity.ErrorMessage(err))
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "nextstep",
	Short: "Career mentoring client",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init API_BASE_URL",
	Short: "Initialize configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(args[0], defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("API Base URL: %s\n", cfg.API.BaseURL)
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("API Base URL:  %s\n", cfg.API.BaseURL)
		fmt.Printf("Identity URL:  %s\n", cfg.Identity.BaseURL)
		fmt.Printf("Base Dir:      %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:       %s\n", cfg.LogDir)
		fmt.Printf("Store:         %s\n", cfg.Store.Type)
		return nil
	},
}

// auth commands
var loginCmd = &cobra.Command{
	Use:   "login EMAIL",
	Short: "Sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Login")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		creds, err := a.Service().Login(cmd.Context(), args[0], password)
		if err != nil {
			return authError(err)
		}

		fmt.Printf("Signed in as %s\n", creds.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register EMAIL",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Register")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		creds, err := a.Service().Register(cmd.Context(), args[0], password)
		if err != nil {
			return authError(err)
		}

		fmt.Printf("Account created for %s\n", creds.Email)
		fmt.Println("Complete your profile with: nextstep profile complete")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Logout")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Service().Logout()
		fmt.Println("Signed out.")
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password EMAIL",
	Short: "Send a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ResetPassword")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().ResetPassword(cmd.Context(), args[0]); err != nil {
			return authError(err)
		}

		fmt.Printf("Password reset email sent to %s\n", args[0])
		return nil
	},
}

// profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Profile")
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Service().Profile(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", p.Name)
		fmt.Printf("Email:       %s\n", p.Email)
		fmt.Printf("Current job: %s\n", p.CurrentJob)
		if p.Stats != nil {
			fmt.Printf("\nJourneys:    %d (%d completed)\n", p.Stats.TotalJourneys, p.Stats.CompletedJourneys)
			fmt.Printf("Skills:      %d\n", p.Stats.TotalSkills)
			fmt.Printf("Avg. progress: %.0f%%\n", p.Stats.AverageProgress)
		}
		return nil
	},
}

var profileCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete your profile after registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		job, _ := cmd.Flags().GetString("job")

		a, err := newApp("CompleteProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Service().CompleteProfile(cmd.Context(), name, job)
		if err != nil {
			return err
		}

		fmt.Printf("Profile completed for %s\n", p.Name)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		job, _ := cmd.Flags().GetString("job")

		a, err := newApp("UpdateProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		svc := a.Service()

		// Unspecified fields keep their current values.
		current, err := svc.Profile(cmd.Context())
		if err != nil {
			return err
		}
		if name == "" {
			name = current.Name
		}
		if email == "" {
			email = current.Email
		}
		if job == "" {
			job = current.CurrentJob
		}

		p, err := svc.UpdateProfile(cmd.Context(), api.ProfileUpdateRequest{
			Name:       name,
			Email:      email,
			CurrentJob: job,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Profile updated: %s <%s>, %s\n", p.Name, p.Email, p.CurrentJob)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your account and all its data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this permanently deletes your account; re-run with --yes to confirm")
		}

		a, err := newApp("DeleteProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DeleteProfile(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Account deleted.")
		return nil
	},
}

// dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "View your dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Dashboard")
		if err != nil {
			return err
		}
		defer a.Close()

		d, err := a.Service().Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		if d == nil {
			fmt.Println("No dashboard data yet. Generate a journey to get started.")
			return nil
		}

		fmt.Printf("%s", d.User.Name)
		if d.User.CurrentJob != "" {
			fmt.Printf("  (%s", d.User.CurrentJob)
			if d.User.DesiredJob != "" {
				fmt.Printf(" -> %s", d.User.DesiredJob)
			}
			fmt.Print(")")
		}
		fmt.Println()

		if d.NextStep != nil {
			fmt.Printf("\nNext step: %s\n", d.NextStep.Title)
			if d.NextStep.Objective != "" {
				fmt.Printf("  %s\n", d.NextStep.Objective)
			}
		}

		if len(d.Skills) > 0 {
			fmt.Println("\nSkills:")
			for _, s := range d.Skills {
				fmt.Printf("  %-20s %-12s %3d%%\n", s.Name, s.Level, s.Progress)
			}
		}

		if len(d.SuggestedPaths) > 0 {
			fmt.Println("\nSuggested paths:")
			for _, p := range d.SuggestedPaths {
				fmt.Printf("  %-30s %s match\n", p.Title, p.Match)
			}
		}

		return nil
	},
}

// journey command
var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "View your active journey",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RefreshJourney")
		if err != nil {
			return err
		}
		defer a.Close()

		svc := a.Service()
		j := svc.RefreshJourney(cmd.Context())
		if j == nil {
			fmt.Printf("No active journey. Completed so far: %d\n", svc.CompletedJourneys())
			fmt.Println("Start one with: nextstep journey new \"DESIRED JOB\"")
			return nil
		}

		printJourney(j)
		fmt.Printf("\nCompleted journeys: %d\n", svc.CompletedJourneys())
		return nil
	},
}

var journeyNewCmd = &cobra.Command{
	Use:   "new DESIRED_JOB",
	Short: "Generate a new journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GenerateJourney")
		if err != nil {
			return err
		}
		defer a.Close()

		sim := nextstep.NewProgressSimulator(nextstep.RealClock{}, nextstep.DefaultProgressInterval, func(p int) {
			fmt.Printf("\rGenerating journey... %3d%%", p)
		})
		sim.Start(30 * time.Second)

		j, err := a.Service().GenerateJourney(cmd.Context(), args[0])
		if err != nil {
			sim.Reset()
			fmt.Println()
			return err
		}
		sim.Complete()
		fmt.Println()

		printJourney(j)
		return nil
	},
}

var journeyStepCmd = &cobra.Command{
	Use:   "step STEP_ID",
	Short: "Mark a journey step done (or not done with --undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		a, err := newApp("UpdateStep")
		if err != nil {
			return err
		}
		defer a.Close()

		j, err := a.Service().UpdateStep(cmd.Context(), args[0], !undo)
		if err != nil {
			return err
		}

		printJourney(j)
		return nil
	},
}

func printJourney(j *api.Journey) {
	fmt.Printf("Journey: %s\n", j.DesiredJob)
	fmt.Printf("Progress: %d%% (%d/%d steps)  status: %s\n",
		j.OverallProgress, j.CompletedSteps, j.TotalSteps, j.Status)

	if len(j.Steps) > 0 {
		fmt.Println("\nSteps:")
		for _, s := range j.Steps {
			marker := " "
			if strings.EqualFold(s.Status, "completed") {
				marker = "x"
			}
			fmt.Printf("  [%s] %s  %s\n", marker, s.StepID, s.Title)
		}
	}

	if len(j.Insights) > 0 {
		fmt.Println("\nInsights:")
		for _, in := range j.Insights {
			fmt.Printf("  - %s\n", in.Text)
		}
	}
}

// chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to your mentor",
}

var chatSendCmd = &cobra.Command{
	Use:   "send MESSAGE",
	Short: "Send a chat message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SendChat")
		if err != nil {
			return err
		}
		defer a.Close()

		reply, err := a.Service().SendChat(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(reply.Reply)
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "View the conversation transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ChatHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		h, err := a.Service().ChatHistory(cmd.Context())
		if err != nil {
			return err
		}
		if h == nil || len(h.Messages) == 0 {
			fmt.Println("No conversation yet.")
			return nil
		}

		for _, m := range h.Messages {
			fmt.Printf("%-9s %s\n", m.Role+":", m.Content)
		}
		return nil
	},
}

var chatResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a fresh conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ResetConversation")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().ResetConversation(); err != nil {
			return err
		}
		fmt.Println("Conversation reset.")
		return nil
	},
}

// resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage your resume",
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a resume for analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UploadResume")
		if err != nil {
			return err
		}
		defer a.Close()

		sim := nextstep.NewProgressSimulator(nextstep.RealClock{}, nextstep.DefaultProgressInterval, func(p int) {
			fmt.Printf("\rAnalyzing resume... %3d%%", p)
		})
		sim.Start(30 * time.Second)

		result, err := a.Service().UploadResume(cmd.Context(), args[0], a.UploadMaxAttempts())
		if err != nil {
			sim.Reset()
			fmt.Println()
			return errors.New(nextstep.UploadFailureMessage(err))
		}
		sim.Complete()
		fmt.Println()

		fmt.Println("Resume analyzed.")
		if result.ResumeAnalysis != nil {
			if len(result.ResumeAnalysis.Skills) > 0 {
				fmt.Printf("Skills found: %s\n", strings.Join(result.ResumeAnalysis.Skills, ", "))
			}
			if len(result.ResumeAnalysis.Gaps) > 0 {
				fmt.Printf("Gaps: %s\n", strings.Join(result.ResumeAnalysis.Gaps, ", "))
			}
		}
		return nil
	},
}

var resumeCareersCmd = &cobra.Command{
	Use:   "careers",
	Short: "View career suggestions from your resume analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SuggestedCareers")
		if err != nil {
			return err
		}
		defer a.Close()

		suggestions := a.Service().SuggestedCareers(cmd.Context())
		if len(suggestions) == 0 {
			fmt.Println("No suggestions yet. Upload a resume first.")
			return nil
		}

		for _, s := range suggestions {
			fmt.Printf("%-30s %s match\n", s.Title, s.Match)
			if s.Reason != "" {
				fmt.Printf("  %s\n", s.Reason)
			}
		}
		return nil
	},
}

var resumeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether a resume is on file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("HasResume")
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Service().HasResume(cmd.Context()) {
			fmt.Println("A resume is on file.")
		} else {
			fmt.Println("No resume uploaded yet.")
		}
		return nil
	},
}

// theme command
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|auto|toggle]",
	Short: "View or change the color theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Theme")
		if err != nil {
			return err
		}
		defer a.Close()

		svc := a.Service()

		var pref nextstep.ThemePreference
		if len(args) == 0 {
			pref = svc.ThemePreference()
		} else {
			switch args[0] {
			case "toggle":
				pref = svc.ToggleTheme()
			case "auto":
				pref = svc.SetAutoTheme(true)
			default:
				pref, err = svc.SetTheme(args[0])
				if err != nil {
					return err
				}
			}
		}

		mode := "manual"
		if pref.Auto {
			mode = "auto"
		}
		fmt.Printf("Theme: %s (%s)\n", pref.Theme, mode)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// profile subcommands
	profileCmd.AddCommand(profileCompleteCmd)
	profileCompleteCmd.Flags().String("name", "", "Your full name")
	profileCompleteCmd.Flags().String("job", "", "Your current job title")
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().String("name", "", "New name")
	profileUpdateCmd.Flags().String("email", "", "New email")
	profileUpdateCmd.Flags().String("job", "", "New current job title")
	profileCmd.AddCommand(profileDeleteCmd)
	profileDeleteCmd.Flags().Bool("yes", false, "Confirm account deletion")

	// journey subcommands
	journeyCmd.AddCommand(journeyNewCmd)
	journeyCmd.AddCommand(journeyStepCmd)
	journeyStepCmd.Flags().Bool("undo", false, "Mark the step as not done")

	// chat subcommands
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatResetCmd)

	// resume subcommands
	resumeCmd.AddCommand(resumeUploadCmd)
	resumeCmd.AddCommand(resumeCareersCmd)
	resumeCmd.AddCommand(resumeStatusCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(journeyCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(themeCmd)
}
