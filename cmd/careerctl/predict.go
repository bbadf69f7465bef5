package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	appcore "career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/domain/career"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type predictOptions struct {
	degree     string
	skills     []string
	experience int
	resume     string
	catalog    string
	all        bool
	compact    bool
}

type predictOutput struct {
	career.Result
	Extracted []string           `json:"extractedSkills,omitempty"`
	Ranking   []career.RoleScore `json:"ranking,omitempty"`
}

func newPredictCmd(root *rootOptions) *cobra.Command {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the best-fit career for a degree, skills and experience",
		Long:  "Runs the same engine as the HTTP API and prints the prediction, skill gap and insights as JSON.",
		Example: `  careerctl predict --degree "Computer Science" --skill Go --skill Docker --experience 2
  careerctl predict --degree "Business" --skill "SQL,Excel" --catalog postgres
  careerctl predict --degree "Mathematics" --resume resume.txt --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.degree, "degree", "", "degree or field of study (required)")
	cmd.Flags().StringSliceVarP(&opts.skills, "skill", "s", nil, "skill held; repeat or comma-separate")
	cmd.Flags().IntVarP(&opts.experience, "experience", "e", 0, "years of experience")
	cmd.Flags().StringVar(&opts.resume, "resume", "", "plain-text resume to extract skills from")
	cmd.Flags().BoolVar(&opts.all, "all", false, "include the score of every role")
	cmd.Flags().StringVar(&opts.catalog, "catalog", string(config.CatalogSourceStatic), "catalog source: static or postgres")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print JSON on one line")

	if err := cmd.MarkFlagRequired("degree"); err != nil {
		panic(fmt.Sprintf("failed to mark degree flag as required: %v", err))
	}
	return cmd
}

func runPredict(cmd *cobra.Command, root *rootOptions, opts *predictOptions) error {
	if opts.experience < 0 {
		return fmt.Errorf("experience must be >= 0, got %d", opts.experience)
	}

	lg, err := root.logger()
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	source := config.CatalogSource(opts.catalog)
	var db database.DB
	if source == config.CatalogSourcePostgres {
		dbCfg, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		db, err = dbpostgres.Connect(ctx, dbCfg)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
	}

	catalog, err := appcore.LoadCatalog(ctx, source, db)
	if err != nil {
		return err
	}

	engine := career.NewEngine(catalog)
	in := career.Input{
		Degree:     opts.degree,
		Skills:     opts.skills,
		Experience: opts.experience,
	}

	var out predictOutput
	if opts.resume != "" {
		text, err := os.ReadFile(opts.resume)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		out.Extracted = engine.ExtractSkills(string(text))
		in.Skills = append(in.Skills, out.Extracted...)
		lg.Debug("skills extracted from resume", zap.Strings("skills", out.Extracted))
	}

	out.Result = engine.Predict(in)
	if opts.all {
		out.Ranking = engine.ScoreAll(in)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode prediction: %w", err)
	}
	return nil
}
