package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/jobdesc"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  "Score a resume against a job description from a text file or URL, and print skill gaps, role predictions, and improvement suggestions.",
	RunE:  runAnalyze,
}

var (
	resumeFile  string
	jobFile     string
	jobURL      string
	configPath  string
	jsonOutput  bool
	withProfile bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVar(&withProfile, "profile", false, "Extract candidate contact details with the LLM")

	analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the JSON shape printed with --json.
type analyzeOutput struct {
	*types.AnalysisResult
	Profile     *llm.Profile      `json:"profile,omitempty"`
	JobInsights *jobdesc.Insights `json:"job_insights,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if jobFile != "" && jobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	resumeText, err := ingestion.ReadTextFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jdText string
	switch {
	case jobFile != "":
		jdText, err = ingestion.ReadTextFile(jobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	case jobURL != "":
		jdText, err = ingestion.FetchJobPosting(ctx, jobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	embedder, closeEmbedder, err := buildEmbedder(ctx, cfg)
	if err != nil {
		return err
	}
	if closeEmbedder != nil {
		defer closeEmbedder()
	}
	if cfg.APIKey == "" && !jsonOutput {
		fmt.Fprintln(os.Stderr, "No API key configured; using local term-frequency similarity.")
	}

	engine, err := buildAnalyzer(cfg, embedder)
	if err != nil {
		return err
	}

	result := engine.Analyze(ctx, resumeText, jdText)

	out := analyzeOutput{AnalysisResult: result}
	if jdText != "" {
		out.JobInsights = jobdesc.Process(jdText)
	}

	if withProfile {
		if cfg.APIKey == "" {
			return fmt.Errorf("--profile requires GEMINI_API_KEY")
		}
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, "")
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()

		profile, err := llm.ExtractProfile(ctx, client, resumeText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: profile extraction failed: %v\n", err)
		} else {
			out.Profile = profile
		}
	}

	if jsonOutput {
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintScores(result)
	printer.PrintSkills(result)
	printer.PrintGuidance(result)
	if out.JobInsights != nil {
		printer.PrintJobInsights(out.JobInsights)
	}
	if out.Profile != nil {
		printer.PrintProfile(out.Profile)
	}

	return nil
}
