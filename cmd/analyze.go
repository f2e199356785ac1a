package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/analyzer"
	"github.com/Ravipaygan296/talentmatch-ai/internal/extract"
	"github.com/Ravipaygan296/talentmatch-ai/internal/logger"
)

const (
	PromptDumpToFile = "Dump result to file"
	PromptExit       = "Exit"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file> <job-description-file>",
	Short: "Analyze how well a resume matches a job description",
	Long: "Reads a resume and a job description from local files (PDF, DOCX, or plain text),\n" +
		"runs the matching pipeline, and prints the assessment.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "do not prompt after printing the result")
	analyzeCmd.Flags().StringP("output", "o", "", "write the result as JSON to the given file")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumeText, err := readDocument(args[0])
	if err != nil {
		logger.Fatal("reading resume", zap.String("file", args[0]), zap.Error(err))
	}

	jobText, err := readDocument(args[1])
	if err != nil {
		logger.Fatal("reading job description", zap.String("file", args[1]), zap.Error(err))
	}

	var aiConfig *AIConfig
	if config != nil {
		aiConfig = config.AI
	}

	oracles, _ := buildOracles(ctx, aiConfig, logger)

	result, err := analyzer.New(oracles, logger).Analyze(ctx, resumeText, jobText)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	printReport(result)

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err := dumpResult(result, output); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
		return
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: []string{PromptDumpToFile, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptDumpToFile:
			filename, err := dumpResultToTmpFile(result)
			if err != nil {
				logger.Fatal("dumping result to file", zap.Error(err))
			}
			logger.Info("dumping result to file", zap.String("filename", filename))
		case PromptExit:
			return
		}
	}
}

// readDocument loads a local resume or job description file, extracting text
// from PDF and DOCX documents.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return extract.FromUpload(path, "", data)
}

func printReport(result *analyzer.MatchResult) {
	fmt.Printf("Fit score: %.2f%%\n\n", result.FitScore)

	fmt.Printf("Matched skills (%d): %s\n", len(result.MatchedSkills), joinOrNone(result.MatchedSkills))
	fmt.Printf("Missing skills (%d): %s\n\n", len(result.MissingSkills), joinOrNone(result.MissingSkills))

	fmt.Printf("Summary:\n%s\n\n", result.HRSummary)

	fmt.Println("Market insights:")
	for _, key := range []string{"demand_level", "skill_priority", "salary_range", "growth_trend", "top_locations"} {
		if value, ok := result.MarketInsights[key]; ok {
			fmt.Printf("  %s: %s\n", key, value)
		}
	}

	fmt.Println("\nSuggestions:")
	for i, suggestion := range result.ImprovementSuggestions {
		fmt.Printf("  %d. %s\n", i+1, suggestion)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func dumpResult(result *analyzer.MatchResult, filename string) error {
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, pretty, 0o644)
}

func dumpResultToTmpFile(result *analyzer.MatchResult) (string, error) {
	file, err := os.CreateTemp("", app+"-result-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	if _, err := file.Write(pretty); err != nil {
		return "", err
	}

	return file.Name(), nil
}
