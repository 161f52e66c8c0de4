package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/resufit/resufit/internal/document"
	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/logger"
	"github.com/resufit/resufit/internal/report"
	"github.com/resufit/resufit/internal/resume"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	PromptShowReport  = "Show report"
	PromptDumpToFile  = "Dump report to file"
	PromptExportExcel = "Export report to Excel"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptShowReport, PromptDumpToFile, PromptExportExcel, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run [resume files or directories]",
	Short: "Evaluate a batch of resumes against a job profile",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("level", "l", "", "candidate level from the job profiles file")
	runCmd.Flags().StringP("role", "r", "", "role name from the job profiles file")
	runCmd.Flags().StringP("excel", "x", "", "write the report to this Excel file and skip the prompt")
	runCmd.Flags().BoolP("no-prompt", "y", false, "print the report and exit without prompting")

	viper.BindPFlag("level", runCmd.Flags().Lookup("level"))
	viper.BindPFlag("role", runCmd.Flags().Lookup("role"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting resufit", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	kit, err := buildToolkit(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the toolkit", zap.Error(err))
	}

	job, err := selectProfile(config, kit.store)
	if err != nil {
		logger.Fatal("selecting the job profile", zap.Error(err))
	}

	paths, err := collectResumes(args)
	if err != nil {
		logger.Fatal("collecting resumes", zap.Error(err))
	}

	logger.Info("starting the evaluation",
		zap.String("job_title", job.Title),
		zap.Int("resumes", len(paths)),
	)

	result := evaluateBatch(ctx, kit, job, paths, config.Concurrency)

	logger.Info("evaluation finished",
		zap.Int("scored", result.Len()-len(result.Failed())),
		zap.Int("failed", len(result.Failed())),
	)

	if excelPath := cmd.Flag("excel").Value.String(); excelPath != "" {
		if err := result.ExportExcel(excelPath); err != nil {
			logger.Fatal("exporting to excel", zap.Error(err))
		}
		logger.Info("report exported", zap.String("filename", excelPath))
		return
	}

	if cmd.Flag("no-prompt").Value.String() == "true" {
		fmt.Print(result.Render())
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// evaluateBatch processes the resumes concurrently. Each resume is
// independent; a failure is recorded on its report item and never
// aborts the siblings.
func evaluateBatch(ctx context.Context, kit *toolkit, job *jobprofile.JobProfile, paths []string, concurrency int) *report.Report {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	now := time.Now()
	items := make([]*report.Item, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			items[i] = kit.evaluate(gctx, job, path, now)
			return nil
		})
	}
	// Workers never return errors; failures live on the items.
	_ = g.Wait()

	result := report.New(job.Title)
	for _, item := range items {
		result.Add(item)
	}
	result.Finalize()
	return result
}

func (t *toolkit) evaluate(ctx context.Context, job *jobprofile.JobProfile, path string, now time.Time) *report.Item {
	item := &report.Item{File: path}
	log := logger.WithFields(t.logger, logger.CommonFields(path, "")...)

	text, err := document.ExtractText(path)
	if err != nil {
		log.Warn("extracting text failed", zap.Error(err))
		item.Err = err.Error()
		return item
	}

	profile := resume.Parse(ctx, text, t.vocabulary, t.recognizer)
	item.Name = profile.Name

	result, err := t.engine.Evaluate(ctx, profile, job, now)
	if err != nil {
		log.Warn("scoring failed", zap.Error(err))
		item.Err = err.Error()
		return item
	}

	item.Result = result

	log.Info("resume evaluated",
		zap.String("candidate", item.Name),
		zap.Int("total_score", result.TotalScore),
	)
	return item
}

func handleAction(action string, result *report.Report, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Print(result.Render())
		return nil
	case PromptDumpToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExportExcel:
		filename := fmt.Sprintf("%s-report.xlsx", app)
		if err := result.ExportExcel(filename); err != nil {
			return fmt.Errorf("export report to excel: %w", err)
		}
		logger.Info("report exported", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
