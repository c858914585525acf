package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/ent"
	"github.com/abhisek/opsdojo/internal/agent"
	"github.com/abhisek/opsdojo/internal/curriculum"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/llm"
	"github.com/abhisek/opsdojo/internal/runs"
	"github.com/abhisek/opsdojo/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an automated learning run driven by the LLM agent",
	Long: "Starts a run and drives it end to end: the configured LLM produces candidate\n" +
		"answers, the grader scores them, and the transcript streams to the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		domain, _ := cmd.Flags().GetString("domain")
		level, _ := cmd.Flags().GetInt("level")
		auto, _ := cmd.Flags().GetBool("auto")
		startLevel, _ := cmd.Flags().GetInt("start-level")
		endLevel, _ := cmd.Flags().GetInt("end-level")
		retryFrom, _ := cmd.Flags().GetString("retry-from")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		llmCfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured; set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY")
		}
		provider, err := llm.NewProvider(ctx, llmCfg, s.LLMEventRepo())
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		composerOpts := []feedback.Option{}
		if cfg.ElaborateFeedback {
			composerOpts = append(composerOpts, feedback.WithElaboration(provider))
		}
		mgr := runs.NewManager(s, feedback.New(composerOpts...), runs.Options{MaxAttempts: cfg.MaxAttempts})

		run, err := startConfiguredRun(cmd, mgr, s, domain, level, auto, startLevel, endLevel, retryFrom)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", styleHeading.Render("Run"), run.ID)

		driver := agent.NewDriver(mgr, agent.New(provider), agent.WithObserver(printEvent))
		final, err := driver.Run(ctx, run.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, styleFail.Render("run aborted:"), err)
			return err
		}

		fmt.Println()
		fmt.Printf("%s state=%s completed=%d failed=%d\n",
			styleHeading.Render("Done."), final.State, final.QuestionsCompleted, final.QuestionsFailed)
		return nil
	},
}

func startConfiguredRun(cmd *cobra.Command, mgr *runs.Manager, s *store.Store, domain string, level int, auto bool, startLevel, endLevel int, retryFrom string) (*ent.Run, error) {
	ctx := cmd.Context()
	switch {
	case retryFrom != "":
		ids, err := mgr.FailedQuestionIDs(ctx, retryFrom)
		if err != nil {
			return nil, err
		}
		return mgr.StartRetrySet(ctx, ids)
	case auto:
		return mgr.StartAutoRun(ctx, startLevel, endLevel)
	default:
		if domain == "" {
			domain = curriculum.Domain
		}
		return mgr.StartRun(ctx, domain, level)
	}
}

func printEvent(e agent.Event) {
	fmt.Println()
	fmt.Println(styleSystem.Render("? " + e.Question.Prompt))
	fmt.Println(styleAgent.Render("> " + e.Answer))
	fmt.Printf("%s attempt %d/%d\n", verdictLabel(e.Result.Correct), e.Result.AttemptNumber, e.Result.MaxAttempts)
	fmt.Println(styleTeacher.Render(e.Result.Feedback))
}

func init() {
	runCmd.Flags().String("domain", "", "Curriculum domain (default: monitoring)")
	runCmd.Flags().Int("level", 1, "Level for a single-level run")
	runCmd.Flags().Bool("auto", false, "Level-range run with automatic advancement")
	runCmd.Flags().Int("start-level", 1, "First level of an auto run")
	runCmd.Flags().Int("end-level", 5, "Last level of an auto run")
	runCmd.Flags().String("retry-from", "", "Replay the failed questions of a previous run")
}
